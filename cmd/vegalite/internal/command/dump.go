package command

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
)

func NewDumpCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the typed value of a document",
		Long: Highlight("vegalite dump [file]") + "\n\n" +
			"Decode a document and print the Go value it maps to, which shows\n" +
			"the union alternative picked for every field.\n",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := cli.readInputs(args)
			if err != nil {
				return err
			}
			dec, err := inputs[0].decode(cmd.Context(), vegalite.ParseOpt{})
			if err != nil {
				return err
			}
			cfg := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
				DisableMethods:          true,
			}
			cfg.Fdump(cli.Out, dec.Value)
			return nil
		},
	}
}
