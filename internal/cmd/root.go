package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/todosift/todosift/internal/config"
	"github.com/todosift/todosift/internal/output"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var (
	doneMarkers   string
	bulletSymbols string
	withChildren  bool
	outputFmt     string
	outputType    output.Format
	queryExpr     string
	configFile    string
	quietFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "todosift [file]",
	Short: "Extract open work items from an outline document",
	Long: `todosift reads a markdown-like outline (headings, checkbox items,
free text), removes completed or cancelled checkbox items together
with any heading structure left empty, and prints what remains.

The document is read from FILE, from - for stdin, or from piped stdin
when no argument is given. Checkbox items are bulleted lines with a
bracketed status marker; a single x, X, or - inside the brackets marks
an item done unless --done-markers overrides the set.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlag()
		if err != nil {
			return err
		}

		// Output format selection: --output > config > default
		formatStr := outputFmt
		if !flagChanged(cmd, "output") && cfg != nil && strings.TrimSpace(cfg.OutputFormat) != "" {
			formatStr = strings.TrimSpace(cfg.OutputFormat)
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format

		// Marker and bullet selection: --done-markers > config > engine default
		if !flagChanged(cmd, "done-markers") && cfg != nil && cfg.DoneMarkers != "" {
			doneMarkers = cfg.DoneMarkers
		}
		bulletSymbols = ""
		if cfg != nil {
			bulletSymbols = cfg.Bullets
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithQuiet(ctx, quietFlag)
		cmd.SetContext(ctx)
		return nil
	},
	RunE: runFilter,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("todosift version %s (commit: %s, built: %s)\n", version, commit, date))

	rootCmd.PersistentFlags().StringVarP(&doneMarkers, "done-markers", "m", "", `Characters accepted as done markers (default "xX-")`)
	rootCmd.PersistentFlags().BoolVar(&withChildren, "with-children", false, "Reserved; currently has no effect on filtering")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format (text|json|ndjson|yaml)")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter structured output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/todosift/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress the removed-items summary")
}

// loadConfigFromFlag loads config from --config if provided, otherwise
// from the default path.
func loadConfigFromFlag() (*config.Config, error) {
	if strings.TrimSpace(configFile) != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed(name) {
		return true
	}
	return cmd.InheritedFlags().Changed(name)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
