package command

import (
	"context"
	"io"
	"os"

	vegalite "github.com/reoring/vegalite"
)

// input is one document source named on the command line. "-" is stdin.
type input struct {
	Name string
	Data []byte
	YAML bool
}

func (c *CLI) readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]input, 0, len(args))
	for _, name := range args {
		var (
			b   []byte
			err error
		)
		if name == "-" {
			b, err = io.ReadAll(c.In)
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		c.Log.Trace("read input", "name", name, "bytes", len(b))
		out = append(out, input{Name: name, Data: b, YAML: vegalite.IsYAML(b)})
	}
	return out, nil
}

// decode parses in as a Document. JSON input keeps presence metadata for
// EncodePreserving; YAML input has none.
func (in input) decode(ctx context.Context, opt vegalite.ParseOpt) (vegalite.Decoded[vegalite.Document], error) {
	if in.YAML {
		var d vegalite.Document
		if err := vegalite.UnmarshalYAML(in.Data, &d, opt); err != nil {
			return vegalite.Decoded[vegalite.Document]{}, err
		}
		return vegalite.Decoded[vegalite.Document]{Value: d}, nil
	}
	return vegalite.ParseWithMeta[vegalite.Document](ctx, vegalite.JSONBytes(in.Data), opt)
}
