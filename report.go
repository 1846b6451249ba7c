package cocoacanvas

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Spinnernicholas/cocoa-canvas/profile"
	"github.com/Spinnernicholas/cocoa-canvas/profile/dsv"
)

const (
	bannerWidth = 80

	countPrompt = "\nCount total rows? This may take a minute. (y/n): "
)

var countPrinter = message.NewPrinter(language.English)

func banner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

// renderAnalysis prints the header inventory and the key fields
// report for the sampled rows.
func renderAnalysis(w io.Writer, path string, size int64, p *profile.Profile, sampleSize int) {
	fmt.Fprintf(w, "Analyzing: %s\n", path)

	if size >= 0 {
		fmt.Fprintf(w, "File size: %.2f MB\n", float64(size)/(1024*1024))
	}

	banner(w)

	fmt.Fprintf(w, "\nTotal Fields: %d\n", len(p.Columns))
	fmt.Fprintf(w, "\nField Names:\n")

	for i, name := range p.Columns {
		fmt.Fprintf(w, "  %3d. %s\n", i+1, name)
	}

	fmt.Fprintf(w, "\n\nAnalyzing first %d rows...\n", sampleSize)
	fmt.Fprintf(w, "\nRows analyzed: %d\n", p.RowCount)

	fmt.Fprintf(w, "\n")
	banner(w)
	fmt.Fprintln(w, "KEY FIELDS ANALYSIS (from sample)")
	banner(w)

	for _, name := range KeyFields {
		f, ok := p.Fields[name]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", name)
		fmt.Fprintf(w, "  Filled: %d/%d (%.1f%%)\n", f.Filled, p.RowCount, f.FillRate(p.RowCount))

		if len(f.Samples) > 0 {
			fmt.Fprintf(w, "  Samples: %s\n", strings.Join(f.Samples, ", "))
		}
	}

	fmt.Fprintf(w, "\n")
	banner(w)
	fmt.Fprintln(w, "ANALYSIS COMPLETE")
	banner(w)
}

// renderRecord prints every non-empty field of one record, the field
// name left-aligned in a 30 character column. A nil record prints
// the section heading only.
func renderRecord(w io.Writer, rec *dsv.Record, num int) {
	fmt.Fprintf(w, "\n")
	banner(w)
	fmt.Fprintf(w, "SAMPLE RECORD #%d\n", num)
	banner(w)

	if rec == nil {
		return
	}

	for i, name := range rec.Columns {
		if i >= len(rec.Values) {
			break
		}

		v := rec.Values[i]
		if strings.TrimSpace(v) == "" {
			continue
		}

		fmt.Fprintf(w, "%-30s: %s\n", name, v)
	}
}

func renderCountBanner(w io.Writer) {
	fmt.Fprintf(w, "\n")
	banner(w)
	fmt.Fprintln(w, "COUNTING TOTAL ROWS (this may take a minute)...")
	banner(w)
}

// renderCount prints the data row total with thousands separators.
func renderCount(w io.Writer, n int64) {
	countPrinter.Fprintf(w, "Total voter records: %d\n", n)
}
