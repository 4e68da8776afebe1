package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlibs/phonenumber"
	"github.com/jlibs/phonenumber/internal/cli/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Classify numbers read from a file or stdin",
	Long: `Read one number per line from a file (or stdin when no file is given, or
the file is "-") and classify each. Blank lines and lines starting with '#'
are skipped.`,
	Example: `  phonenumber batch contacts.txt --output csv
  cat numbers.txt | phonenumber batch --dedupe --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("region", "r", "", "Region: cn or hk (default from config)")
	batchCmd.Flags().Bool("fold-width", true, "Map fullwidth digits to ASCII before parsing")
	batchCmd.Flags().Bool("dedupe", false, "Drop numbers that normalize to an already seen number")
}

func runBatch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	regionFlag, _ := cmd.Flags().GetString("region")
	region, err := resolveRegion(e, regionFlag)
	if err != nil {
		return err
	}
	dedupe, _ := cmd.Flags().GetBool("dedupe")

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
		source = args[0]
	}

	lines, err := readNumbers(in)
	if err != nil {
		return err
	}

	sp := ui.NewStepSpinner(cmd.ErrOrStderr(), !stderrIsTerminal())
	sp.Start(fmt.Sprintf("Classifying %d numbers from %s", len(lines), source))

	recs, dropped, err := classifyAll(e, region, lines, dedupe)
	if err != nil {
		sp.Fail()
		return err
	}
	sp.Done()
	e.logger.Info("batch complete", "source", source, "read", len(lines), "written", len(recs), "duplicates", dropped)

	return writeRecords(e.out, e.format, recs)
}

// classifyAll parses every line. With dedupe, later entries that share a
// Key with an earlier one are dropped and counted.
func classifyAll(e *env, region phonenumber.Region, lines []string, dedupe bool) ([]record, int, error) {
	recs := make([]record, 0, len(lines))
	seen := make(map[phonenumber.Key]struct{}, len(lines))
	dropped := 0
	for _, raw := range lines {
		n, err := parseNumber(e, region, raw)
		if err != nil {
			return nil, 0, err
		}
		if dedupe {
			k := phonenumber.KeyOf(n)
			if _, ok := seen[k]; ok {
				dropped++
				continue
			}
			seen[k] = struct{}{}
		}
		recs = append(recs, newRecord(raw, n))
	}
	return recs, dropped, nil
}
