package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlibs/phonenumber/internal/config"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersion is called from main to inject build-time version info.
func SetVersion(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

var rootCmd = &cobra.Command{
	Use:   "phonenumber",
	Short: "Classify, format, and dial China and Hong Kong phone numbers",
	Long: `phonenumber normalizes loosely formatted telephone numbers for mainland
China and Hong Kong, classifies them (landline, cellular, emergency, hotline,
service), and computes the dial string needed to call one number from another.

Examples:
  phonenumber parse "+86 (0755) 86105638"
  phonenumber dial 075586105638 23154678 --to-region hk`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format (shorthand for --output json)")
	rootCmd.PersistentFlags().String("output", "", "Output format: table, json, or csv (default from config)")
	rootCmd.PersistentFlags().String("config", "", "Path to phonenumber.toml config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dialCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	initHelp()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// env bundles what every command needs after flags are resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	format string
	out    io.Writer
}

// loadEnv resolves config (defaults → file → env → flags) and builds the
// logger. Only flags the user actually set override config.
func loadEnv(cmd *cobra.Command) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")

	flags := map[string]string{}
	for _, name := range []string{"region", "output", "fold-width", "log-level"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[name] = f.Value.String()
		}
	}
	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		flags["output"] = "json"
	}

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, _ := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	return &env{
		cfg:    cfg,
		logger: logger,
		format: cfg.Output.Format,
		out:    cmd.OutOrStdout(),
	}, nil
}

// writeCSV writes rows as CSV to the given writer.
// cols is the list of column headers; rows is a slice of string slices.
func writeCSV(w io.Writer, cols []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// stderrIsTerminal is swapped in tests.
var stderrIsTerminal = func() bool {
	return colorEnabledFd(os.Stderr.Fd())
}
