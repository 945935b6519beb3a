package command

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	vegalite "github.com/reoring/vegalite"
	"github.com/reoring/vegalite/source/gojson"
)

// Config is the on-disk configuration of the CLI.
type Config struct {
	Indent   string `yaml:"indent"`
	LogLevel string `yaml:"logLevel"`
	// Driver picks the JSON tokenizer: "encoding/json" or "go-json".
	Driver string `yaml:"driver"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{Indent: "  ", Driver: "encoding/json"}
}

// LoadConfig reads a YAML config file. Keys left out keep their defaults and
// unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func applyDriver(name string) error {
	switch name {
	case "", "encoding/json":
		vegalite.UseDefaultJSONDriver()
	case "go-json":
		vegalite.SetJSONDriver(gojson.Driver())
	default:
		return fmt.Errorf("unknown JSON driver %q", name)
	}
	return nil
}
