package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
	"github.com/reoring/vegalite/render"
)

// HTMLOptions holds the options of the html command.
type HTMLOptions struct {
	Output string
	Open   bool
	Title  string
}

func NewHTMLCommand(cli *CLI) *cobra.Command {
	var opts HTMLOptions
	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Render a document as an HTML page",
		Long: Highlight("vegalite html [file]") + "\n\n" +
			"Embed a document in a standalone page driven by vega-embed.\n" +
			"With --open the page is written to a temporary file and shown\n" +
			"in the default browser.\n",
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
			page := render.PageOptions{Title: opts.Title}
			if opts.Open {
				path, err := render.Show(dec.Value, render.ShowOptions{Page: page, Logger: cli.Log})
				if err != nil {
					return err
				}
				fmt.Fprintln(cli.Out, path)
				return nil
			}
			html, err := render.HTMLPage(dec.Value, page)
			if err != nil {
				return err
			}
			if opts.Output == "" {
				_, err = fmt.Fprint(cli.Out, html)
				return err
			}
			cli.Log.Debug("writing page", "path", opts.Output)
			return os.WriteFile(opts.Output, []byte(html), 0o644)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the page to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the page in a browser")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Page title")
	return cmd
}
