package command

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	vegalite "github.com/reoring/vegalite"
)

// LintOptions holds the options of the lint command.
type LintOptions struct {
	AllowUnknown bool
	MaxIssues    int
}

func NewLintCommand(cli *CLI) *cobra.Command {
	var opts LintOptions
	cmd := &cobra.Command{
		Use:   "lint [file...]",
		Short: "Check documents for problems",
		Long: Highlight("vegalite lint [file...]") + "\n\n" +
			"Report unknown keys, duplicate keys, type errors and schema\n" +
			"versions outside v3. Every file is checked; the command fails\n" +
			"when any of them has a problem.\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := cli.readInputs(args)
			if err != nil {
				return err
			}
			var result *multierror.Error
			for _, in := range inputs {
				iss := opts.lint(cmd.Context(), in)
				if len(iss) == 0 {
					fmt.Fprintln(cli.Out, color.GreenString("ok"), in.Name)
					continue
				}
				for _, it := range iss {
					fmt.Fprintf(cli.Out, "%s %s: %s %s: %s\n",
						color.RedString("error"), in.Name, it.Path, color.YellowString(it.Code), it.Message)
				}
				result = multierror.Append(result, fmt.Errorf("%s: %w", in.Name, iss))
			}
			if result != nil {
				result.ErrorFormat = func(errs []error) string {
					return fmt.Sprintf("%d of %d files have problems", len(errs), len(inputs))
				}
			}
			return result.ErrorOrNil()
		},
	}
	cmd.Flags().BoolVar(&opts.AllowUnknown, "allow-unknown", false, "Do not report unknown keys")
	cmd.Flags().IntVar(&opts.MaxIssues, "max-issues", 100, "Cap on duplicate key reports per file (-1 for no cap)")
	return cmd
}

func (o LintOptions) lint(ctx context.Context, in input) vegalite.Issues {
	var iss vegalite.Issues
	if !in.YAML {
		iss = append(iss, vegalite.DetectJSONDuplicateKeysBytes(in.Data, o.MaxIssues)...)
	}
	opt := vegalite.ParseOpt{Unknown: vegalite.UnknownStrict}
	if o.AllowUnknown {
		opt.Unknown = vegalite.UnknownStrip
	}
	dec, err := in.decode(ctx, opt)
	if err != nil {
		if more, ok := vegalite.AsIssues(err); ok {
			return append(iss, more...)
		}
		return append(iss, vegalite.Issue{Code: vegalite.CodeParseError, Path: "/", Message: err.Error(), Offset: -1})
	}
	if err := vegalite.CheckSchema(dec.Value); err != nil {
		if more, ok := vegalite.AsIssues(err); ok {
			iss = append(iss, more...)
		}
	}
	return iss
}
