package cocoacanvas

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Spinnernicholas/cocoa-canvas/profile/dsv"
	"github.com/Spinnernicholas/cocoa-canvas/profile/report"
	"github.com/Spinnernicholas/cocoa-canvas/reader"
)

// Request describes a single reconnaissance run over a voter export.
type Request struct {
	// Input path. Empty means stdin, which limits the run to the
	// sampling pass since stdin cannot be re-read.
	Path string

	// File specifics.
	Delimiter   string
	Compression string

	// Analysis behavior.
	SampleSize int
	RecordNum  int

	// Optional JSON report destination.
	ReportPath string

	// Report destination. Defaults to os.Stdout.
	Out io.Writer

	// Gate for the full row count pass. Nil declines.
	Confirm Confirmer
}

func (r *Request) delim() byte {
	if r.Delimiter == "" {
		return '\t'
	}
	return r.Delimiter[0]
}

func (r *Request) displayPath() string {
	if r.Path == "" {
		return "<stdin>"
	}
	return r.Path
}

// Analyze runs the reconnaissance passes over the export: a bounded
// field sample, a single record dump, and an optional full row
// count. Each pass opens the input independently.
func Analyze(r *Request) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	if r.SampleSize <= 0 {
		r.SampleSize = dsv.DefaultSampleSize
	}

	if r.RecordNum <= 0 {
		r.RecordNum = DefaultRecordNum
	}

	fileType, fileComp := reader.DetectType(r.Path)

	if r.Compression == "" {
		r.Compression = fileComp
	}

	// The vendor occasionally ships comma variants.
	if r.Delimiter == "" && fileType == "csv" {
		r.Delimiter = ","
	}

	// Pass 1: bounded sample scan.
	in, err := reader.Open(r.Path, r.Compression)
	if err != nil {
		return fmt.Errorf("cannot open input: %s", err)
	}
	defer in.Close()

	size := in.Size()

	dp := dsv.NewProfiler(in)
	dp.Delimiter = r.delim()
	dp.SampleSize = r.SampleSize

	prof, err := dp.Profile()
	if err != nil {
		return fmt.Errorf("profile error: %s", err)
	}

	in.Close()

	renderAnalysis(out, r.displayPath(), size, prof, r.SampleSize)

	if r.ReportPath != "" {
		doc := report.New(r.Path, prof)
		if err := report.Save(r.ReportPath, doc); err != nil {
			return fmt.Errorf("cannot save report: %s", err)
		}

		log.Printf("Saved report %s to %s", doc.ID, r.ReportPath)
	}

	if r.Path == "" {
		return nil
	}

	// Pass 2: single record dump.
	in, err = reader.Open(r.Path, r.Compression)
	if err != nil {
		return fmt.Errorf("cannot open input: %s", err)
	}
	defer in.Close()

	rec, err := dsv.FindRecord(in, r.delim(), r.RecordNum)
	if err != nil {
		return fmt.Errorf("record lookup error: %s", err)
	}

	in.Close()

	renderRecord(out, rec, r.RecordNum)

	// Pass 3: optional full row count.
	if r.Confirm == nil || !r.Confirm.Confirm(countPrompt) {
		return nil
	}

	in, err = reader.Open(r.Path, r.Compression)
	if err != nil {
		return fmt.Errorf("cannot open input: %s", err)
	}
	defer in.Close()

	renderCountBanner(out)

	n, err := dsv.CountRows(in)
	if err != nil {
		return fmt.Errorf("count error: %s", err)
	}

	renderCount(out, n)

	return nil
}
