package command

import (
	"bytes"
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
)

// FmtOptions holds the options of the fmt command.
type FmtOptions struct {
	Indent   string
	Compact  bool
	Preserve bool
	Write    bool
}

func NewFmtCommand(cli *CLI) *cobra.Command {
	var opts FmtOptions
	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Rewrite documents as canonical JSON",
		Long: Highlight("vegalite fmt [file...]") + "\n\n" +
			"Parse each JSON or YAML document and print it as canonical JSON:\n" +
			"keys in schema order, empty fields dropped and $schema filled in.\n" +
			"Reads stdin when no file is given.\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				opts.Indent = cli.Config.Indent
			}
			if opts.Write && len(args) == 0 {
				return fmt.Errorf("-w needs at least one file")
			}
			inputs, err := cli.readInputs(args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				out, err := opts.format(cmd, in)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				if opts.Write {
					if bytes.Equal(out, in.Data) {
						continue
					}
					if err := os.WriteFile(in.Name, out, 0o644); err != nil {
						return err
					}
					cli.Log.Info("formatted", "file", in.Name)
					continue
				}
				if _, err := cli.Out.Write(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Indent, "indent", "  ", "Indentation string")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "Write compact JSON")
	cmd.Flags().BoolVar(&opts.Preserve, "preserve", false, "Leave out defaults the input did not spell out")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write the result back to each file")
	return cmd
}

func (o FmtOptions) format(cmd *cobra.Command, in input) ([]byte, error) {
	dec, err := in.decode(cmd.Context(), vegalite.ParseOpt{})
	if err != nil {
		return nil, err
	}
	var b []byte
	if o.Preserve {
		b, err = vegalite.EncodePreserving(dec)
	} else {
		b, err = vegalite.Marshal(dec.Value)
	}
	if err != nil {
		return nil, err
	}
	if !o.Compact {
		var buf bytes.Buffer
		if err := gojson.Indent(&buf, b, "", o.Indent); err != nil {
			return nil, err
		}
		b = buf.Bytes()
	}
	return append(b, '\n'), nil
}
