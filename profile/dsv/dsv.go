package dsv

import (
	"fmt"
	"io"

	"github.com/Spinnernicholas/cocoa-canvas/profile"
)

// DefaultSampleSize is the number of data rows profiled when no
// limit is given. Large enough to expose sparsely filled fields,
// small enough to stay instant on multi-gigabyte exports.
const DefaultSampleSize = 100

// Profiler reads delimiter-separated records and accumulates
// per-field fill statistics over a bounded sample of rows.
type Profiler struct {
	Config     *profile.Config
	Delimiter  byte
	Header     bool
	SampleSize int

	in io.Reader
}

func (x *Profiler) Profile() (*profile.Profile, error) {
	p := profile.NewProfiler(x.Config)
	sc := NewSepScanner(x.in, x.Delimiter)

	// First record, may be the header.
	record, err := sc.Read()
	if err != nil {
		return nil, err
	}

	header := make([]string, len(record))
	if x.Header {
		copy(header, record)
	} else {
		for i := range record {
			header[i] = fmt.Sprintf("c%d", i+1)
		}
	}

	// Duplicate header names collapse to their last position, so a
	// field is recorded once per row and the fill counts still sum
	// to the rows analyzed.
	last := make(map[string]int, len(header))
	for i, name := range header {
		last[name] = i
	}

	names := make([]string, 0, len(last))
	for _, name := range header {
		if !contains(names, name) {
			names = append(names, name)
		}
	}

	var rows int

	// Without a header the first record is data.
	if !x.Header {
		for _, field := range names {
			p.Record(field, record[last[field]])
		}

		p.Incr()
		rows++
	}

	// Continue with the remaining records, up to the sample limit.
	for x.SampleSize <= 0 || rows < x.SampleSize {
		err := sc.ScanLine(record)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		for _, field := range names {
			p.Record(field, record[last[field]])
		}

		p.Incr()
		rows++
	}

	pf := p.Profile()
	pf.Columns = header

	// Set the 1-based index of each profiled field.
	for _, name := range names {
		if f, ok := pf.Fields[name]; ok {
			f.Index = last[name] + 1
		}
	}

	return pf, nil
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// NewProfiler returns a profiler for tab-separated data with a
// header row, sampling the first DefaultSampleSize rows.
func NewProfiler(r io.Reader) *Profiler {
	return &Profiler{
		Delimiter:  '\t',
		Header:     true,
		SampleSize: DefaultSampleSize,
		in:         r,
	}
}
