package command

import (
	"bytes"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
)

func NewSchemaCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the document model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := vegalite.JSONSchema()
			if err != nil {
				return err
			}
			b, err := gojson.Marshal(s)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := gojson.Indent(&buf, b, "", cli.Config.Indent); err != nil {
				return err
			}
			buf.WriteByte('\n')
			_, err = cli.Out.Write(buf.Bytes())
			return err
		},
	}
}
