package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jlibs/phonenumber"
)

// record is the rendered form of one parsed number.
type record struct {
	Input       string               `json:"input"`
	Region      phonenumber.Region   `json:"region"`
	Category    phonenumber.Category `json:"category"`
	Number      string               `json:"number"`
	AreaCode    string               `json:"area_code,omitempty"`
	LocalNumber string               `json:"local_number"`
	Display     string               `json:"display"`
}

func newRecord(input string, n phonenumber.PhoneNumber) record {
	rec := record{
		Input:       input,
		Region:      n.Region(),
		Category:    n.Category(),
		Number:      n.Number(),
		LocalNumber: n.Number(),
		Display:     n.ShowNumber(),
	}
	if cn, ok := n.(phonenumber.China); ok {
		rec.AreaCode = cn.AreaCode()
		rec.LocalNumber = cn.LocalNumber()
	}
	return rec
}

var recordColumns = []string{"input", "region", "category", "number", "area_code", "local_number", "display"}

func (r record) row() []string {
	return []string{r.Input, r.Region.String(), r.Category.String(), r.Number, r.AreaCode, r.LocalNumber, r.Display}
}

// writeRecords renders recs in the given format.
func writeRecords(w io.Writer, format string, recs []record) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "csv":
		rows := make([][]string, len(recs))
		for i, r := range recs {
			rows[i] = r.row()
		}
		return writeCSV(w, recordColumns, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tREGION\tCATEGORY\tNUMBER\tAREA\tLOCAL\tDISPLAY")
	for _, r := range recs {
		area := r.AreaCode
		if area == "" {
			area = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Input, r.Region, r.Category, r.Number, area, r.LocalNumber, r.Display)
	}
	return tw.Flush()
}
