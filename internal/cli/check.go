package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jlibs/phonenumber/internal/libphone"
)

var checkCmd = &cobra.Command{
	Use:   "check <number>...",
	Short: "Compare the classification with libphonenumber metadata",
	Long: `Classify each number and cross-check it against the libphonenumber
metadata bundled into the binary. Short codes such as 110 or 95599 are not
part of that metadata and agree when libphonenumber reports them invalid.`,
	Example: `  phonenumber check 13800138000 "0755 86105638"
  phonenumber check --region hk 23154678 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("region", "r", "", "Region: cn or hk (default from config)")
	checkCmd.Flags().Bool("fold-width", true, "Map fullwidth digits to ASCII before parsing")
	checkCmd.Flags().Bool("strict", false, "Exit with an error if any number disagrees")
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	regionFlag, _ := cmd.Flags().GetString("region")
	region, err := resolveRegion(e, regionFlag)
	if err != nil {
		return err
	}
	strict, _ := cmd.Flags().GetBool("strict")

	results := make([]libphone.Result, 0, len(args))
	disagreements := 0
	for _, raw := range args {
		n, err := parseNumber(e, region, raw)
		if err != nil {
			return err
		}
		res := libphone.Check(n)
		if !res.Agrees {
			disagreements++
			e.logger.Warn("classification disagrees with libphonenumber",
				"input", raw, "category", res.Category, "libphonenumber_type", res.Type, "valid", res.Valid)
		}
		results = append(results, res)
	}

	switch e.format {
	case "json":
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	case "csv":
		rows := make([][]string, len(results))
		for i, r := range results {
			rows[i] = []string{args[i], r.Category, r.Type, fmt.Sprint(r.Valid), r.Region, r.E164, fmt.Sprint(r.Agrees)}
		}
		if err := writeCSV(e.out, []string{"input", "category", "libphonenumber_type", "valid", "region", "e164", "agrees"}, rows); err != nil {
			return err
		}
	default:
		c := colorEnabledFd(1)
		tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INPUT\tCATEGORY\tLIBPHONENUMBER\tVALID\tREGION\tE164\tAGREES")
		for i, r := range results {
			agrees := green("yes", c)
			if !r.Agrees {
				agrees = red("no", c)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\t%s\n", args[i], r.Category, r.Type, r.Valid, dash(r.Region), dash(r.E164), agrees)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if strict && disagreements > 0 {
		return fmt.Errorf("%d of %d numbers disagree with libphonenumber", disagreements, len(results))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
