package dsv

import "io"

// Record pairs one data row with the header it was read under.
type Record struct {
	Columns []string
	Values  []string
}

// Value returns the value for a named column and whether the column
// exists in the record.
func (r *Record) Value(name string) (string, bool) {
	for i, c := range r.Columns {
		if c == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}

	return "", false
}

// FindRecord reads delimiter-separated data and returns the num'th
// data record, 1-based with the header excluded. A num past the end
// of the input returns nil with no error.
func FindRecord(rd io.Reader, sep byte, num int) (*Record, error) {
	if num < 1 {
		return nil, nil
	}

	sc := NewSepScanner(rd, sep)

	header, err := sc.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	row := make([]string, len(header))

	for i := 1; ; i++ {
		err := sc.ScanLine(row)
		if err == io.EOF {
			return nil, nil
		}

		if err != nil {
			return nil, err
		}

		if i == num {
			return &Record{
				Columns: header,
				Values:  append([]string(nil), row...),
			}, nil
		}
	}
}
