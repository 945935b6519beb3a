// Package command implements the vegalite subcommands.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
)

// CLI is the state shared by every subcommand.
type CLI struct {
	Out    io.Writer
	Err    io.Writer
	In     io.Reader
	Log    hclog.Logger
	Config Config
}

// NewCLI returns a CLI writing to out and errw with a silent logger.
func NewCLI(in io.Reader, out, errw io.Writer) *CLI {
	return &CLI{In: in, Out: out, Err: errw, Log: hclog.NewNullLogger(), Config: DefaultConfig()}
}

// Highlight applies the heading color to the formatted text.
func Highlight(format string, a ...any) string {
	return color.New(color.FgCyan, color.Bold).Sprintf(format, a...)
}

// Execute runs the root command against the process streams and exits.
func Execute() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}
	cli := NewCLI(os.Stdin, os.Stdout, os.Stderr)
	root := NewRootCommand(cli)
	AddCommands(root, cli)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(cli.Err, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// AddCommands registers all subcommands to the root command.
func AddCommands(root *cobra.Command, cli *CLI) {
	root.AddCommand(
		NewFmtCommand(cli),
		NewLintCommand(cli),
		NewDumpCommand(cli),
		NewHTMLCommand(cli),
		NewSchemaCommand(cli),
		NewVersionCommand(cli),
	)
}

// NewVersionCommand prints the supported schema version.
func NewVersionCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the supported Vega-Lite schema version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cli.Out, "Vega-Lite %s (%s)\n", vegalite.SchemaVersion, vegalite.SchemaURL)
		},
	}
}
