package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
	"github.com/reoring/vegalite/cmd/vegalite/internal/command"
)

const barJSON = `{"mark":"bar","encoding":{"x":{"field":"a","type":"ordinal"},"y":{"field":"b","type":"quantitative"}}}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	cli := command.NewCLI(strings.NewReader(stdin), &out, &errOut)
	root := command.NewRootCommand(cli)
	command.AddCommands(root, cli)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestFmt_Stdin(t *testing.T) {
	out, err := run(t, barJSON, "fmt", "--compact")
	require.NoError(t, err)
	assert.Equal(t, `{"$schema":"`+vegalite.SchemaURL+`","mark":"bar","encoding":{"x":{"field":"a","type":"ordinal"},"y":{"field":"b","type":"quantitative"}}}`+"\n", out)
}

func TestFmt_Preserve(t *testing.T) {
	out, err := run(t, barJSON, "fmt", "--compact", "--preserve")
	require.NoError(t, err)
	assert.NotContains(t, out, "$schema")
	assert.True(t, strings.HasPrefix(out, `{"mark":"bar"`))
}

func TestFmt_YAMLIndented(t *testing.T) {
	p := writeFile(t, "bar.yaml", "mark: bar\ndescription: bars\n")
	out, err := run(t, "", "fmt", "--indent", "\t", p)
	require.NoError(t, err)
	assert.Contains(t, out, "\n\t\"description\": \"bars\",\n")
}

func TestFmt_WriteBack(t *testing.T) {
	p := writeFile(t, "bar.json", barJSON)
	_, err := run(t, "", "fmt", "-w", "--compact", p)
	require.NoError(t, err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), `{"$schema":`))
}

func TestFmt_WriteNeedsFile(t *testing.T) {
	_, err := run(t, barJSON, "fmt", "-w")
	require.Error(t, err)
}

func TestLint(t *testing.T) {
	good := writeFile(t, "good.json", barJSON)
	dup := writeFile(t, "dup.json", `{"mark":"bar","mark":"line"}`)
	unknown := writeFile(t, "unknown.json", `{"mark":"bar","colour":"red"}`)
	v4 := writeFile(t, "v4.json", `{"$schema":"https://vega.github.io/schema/vega-lite/v4.json","mark":"bar"}`)

	out, err := run(t, "", "lint", good, dup, unknown, v4)
	require.Error(t, err)
	assert.Equal(t, "3 of 4 files have problems", err.Error())
	assert.Contains(t, out, "ok "+good)
	assert.Contains(t, out, dup+": /mark duplicate_key")
	assert.Contains(t, out, unknown+": /colour unknown_key")
	assert.Contains(t, out, v4+": /$schema incompatible_schema")
}

func TestLint_AllowUnknown(t *testing.T) {
	_, err := run(t, `{"mark":"bar","colour":"red"}`, "lint", "--allow-unknown")
	require.NoError(t, err)
}

func TestDump(t *testing.T) {
	out, err := run(t, barJSON, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "vegalite.Document")
	assert.Contains(t, out, `Mark: (vegalite.Mark) (len=3) "bar"`)
	assert.NotContains(t, out, `{"$schema"`)
}

func TestHTML(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.html")
	_, err := run(t, barJSON, "html", "-o", dst, "--title", "bars")
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<title>bars</title>")
	assert.Contains(t, string(b), `var spec = {"$schema":`)
}

func TestSchema(t *testing.T) {
	out, err := run(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$ref": "#/definitions/Document"`)
	assert.Contains(t, out, `"http://json-schema.org/draft-07/schema#"`)
	assert.Contains(t, out, "\n  \"definitions\": {")
}

func TestConfig(t *testing.T) {
	cfg := writeFile(t, "vl.yaml", "indent: \"    \"\nlogLevel: error\ndriver: go-json\n")
	out, err := run(t, barJSON, "--config", cfg, "fmt")
	require.NoError(t, err)
	assert.Contains(t, out, "\n    \"mark\": \"bar\",\n")
	vegalite.UseDefaultJSONDriver()

	bad := writeFile(t, "bad.yaml", "indnet: x\n")
	_, err = run(t, barJSON, "--config", bad, "fmt")
	require.Error(t, err)
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := run(t, barJSON, "--log-level", "loud", "fmt")
	require.ErrorContains(t, err, "unknown log level")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Vega-Lite 3.4.0")
}
