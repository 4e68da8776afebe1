package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <number>...",
	Short: "Classify one or more phone numbers",
	Long: `Normalize and classify each number, printing its category, composed
in-country number, area code, local number, and international display form.`,
	Example: `  phonenumber parse "+86 (0755) 86105638"
  phonenumber parse 110 400-810-8888 --json
  phonenumber parse --region hk "+852 2315 4678"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Print a number in international display form",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	for _, cmd := range []*cobra.Command{parseCmd, showCmd} {
		cmd.Flags().StringP("region", "r", "", "Region: cn or hk (default from config)")
		cmd.Flags().Bool("fold-width", true, "Map fullwidth digits to ASCII before parsing")
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	regionFlag, _ := cmd.Flags().GetString("region")
	region, err := resolveRegion(e, regionFlag)
	if err != nil {
		return err
	}

	recs := make([]record, 0, len(args))
	for _, raw := range args {
		n, err := parseNumber(e, region, raw)
		if err != nil {
			return err
		}
		recs = append(recs, newRecord(raw, n))
	}
	return writeRecords(e.out, e.format, recs)
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	regionFlag, _ := cmd.Flags().GetString("region")
	region, err := resolveRegion(e, regionFlag)
	if err != nil {
		return err
	}
	n, err := parseNumber(e, region, args[0])
	if err != nil {
		return err
	}
	if e.format == "json" {
		return writeRecords(e.out, "json", []record{newRecord(args[0], n)})
	}
	fmt.Fprintln(e.out, n.ShowNumber())
	return nil
}
