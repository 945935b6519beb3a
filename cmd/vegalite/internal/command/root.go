package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the root command. Global flags are applied to cli
// before any subcommand runs.
func NewRootCommand(cli *CLI) *cobra.Command {
	var (
		configPath string
		logLevel   string
		noColor    bool
	)
	cmd := &cobra.Command{
		Use:   "vegalite",
		Short: "Format, lint and render Vega-Lite v3 documents",
		Long: Highlight("vegalite <subcommand> [args]") + "\n\n" +
			"vegalite reads Vega-Lite v3 documents written as JSON or YAML,\n" +
			"checks them against the typed model and writes them back in\n" +
			"canonical form.\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			if configPath != "" {
				c, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cli.Config = c
			}
			if cmd.Flags().Changed("log-level") || cli.Config.LogLevel == "" {
				cli.Config.LogLevel = logLevel
			}
			lvl := hclog.LevelFromString(cli.Config.LogLevel)
			if lvl == hclog.NoLevel {
				return fmt.Errorf("unknown log level %q", cli.Config.LogLevel)
			}
			cli.Log = hclog.New(&hclog.LoggerOptions{
				Name:   "vegalite",
				Level:  lvl,
				Output: cli.Err,
				Color:  hclog.AutoColor,
			})
			if err := applyDriver(cli.Config.Driver); err != nil {
				return err
			}
			cli.Log.Debug("configured", "config", configPath, "driver", cli.Config.Driver)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level: "+strings.Join([]string{"trace", "debug", "info", "warn", "error", "off"}, ", "))
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.SetIn(cli.In)
	cmd.SetOut(cli.Out)
	cmd.SetErr(cli.Err)
	return cmd
}
