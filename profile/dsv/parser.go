package dsv

import (
	"bufio"
	"errors"
	"io"
)

var (
	errUnescapedQuote    = errors.New("bare quote")
	errUnterminatedField = errors.New("unterminated field")
)

// maxLineSize bounds a single input line. Voter exports carry wide
// rows but nothing near this.
const maxLineSize = 4 << 20

func clearRow(row []string) {
	for i := range row {
		row[i] = ""
	}
}

// Scanner steps through the fields of delimiter-separated records.
// Quoted fields are supported (rfc4180 semantics with a configurable
// separator). Successive calls to Scan advance one field at a time;
// EndOfRecord reports when the current field closed out its line.
type Scanner struct {
	sc *bufio.Scanner

	// If true, field-level quoting errors degrade to taking the rest
	// of the line as literal field text instead of stopping the scan.
	// Vendor exports carry stray quotes and a recon pass must not
	// abort on them.
	ContinueOnError bool

	sep    byte // field separator
	eor    bool // true when the most recent field was terminated by a newline
	lineno int  // current line number (not record number)
	column int  // current column index, 1-based

	eof bool
	err error

	// Full line, last valid field value, remaining data in the line.
	line  string
	token []byte
	data  []byte

	trail bool
}

// NewScanner returns a scanner for tab-separated data, the layout
// used by county voter exports.
func NewScanner(rd io.Reader) *Scanner {
	return NewSepScanner(rd, '\t')
}

// NewSepScanner returns a scanner with an explicit field separator.
func NewSepScanner(r io.Reader, sep byte) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLineSize)

	return &Scanner{
		ContinueOnError: true,

		sc:  sc,
		sep: sep,
		eor: true,
	}
}

// Line returns the current line as a string.
func (s *Scanner) Line() string {
	return s.line
}

// Text returns the text of the current field.
func (s *Scanner) Text() string {
	return string(s.token)
}

// LineNumber returns the current line number.
func (s *Scanner) LineNumber() int {
	return s.lineno
}

// ColumnNumber returns the column index of the current field.
func (s *Scanner) ColumnNumber() int {
	return s.column
}

// EndOfRecord returns true when the most recent field has been
// terminated by a newline rather than a separator.
func (s *Scanner) EndOfRecord() bool {
	return s.eor
}

// Err returns an error if one occurred during scanning.
func (s *Scanner) Err() error {
	if err := s.sc.Err(); err != nil {
		return err
	}

	if s.err != nil {
		return s.err
	}

	if s.eof {
		return io.EOF
	}

	return nil
}

// Read scans all fields in one record and returns them as a slice.
func (s *Scanner) Read() ([]string, error) {
	var (
		err error
		r   []string
	)

	for s.Scan() {
		if err = s.Err(); err != nil {
			return nil, err
		}

		r = append(r, s.Text())

		if s.EndOfRecord() {
			break
		}
	}

	return r, s.Err()
}

// ScanLine scans one record into the passed slice. Records with more
// fields than the slice holds are drained; the extra fields are
// dropped. Records with fewer fields leave the tail of the slice
// empty. This mirrors how ragged rows behave in the vendor's own
// extract tooling.
func (s *Scanner) ScanLine(r []string) error {
	var (
		err error
		max = len(r)
	)

	clearRow(r)

	for i := 0; s.Scan(); i++ {
		if err = s.Err(); err != nil {
			if i < max {
				clearRow(r[i:])
			}
			return err
		}

		if i < max {
			r[i] = s.Text()
		}

		if s.EndOfRecord() {
			break
		}
	}

	return s.Err()
}

func (s *Scanner) Scan() bool {
	// Error.
	if s.err != nil && !s.ContinueOnError {
		return false
	}

	// EOF
	if s.eof && len(s.data) == 0 {
		return false
	}

	// If the end of the record has been reached, scan for the next line.
	if s.eor {
		// Clear.
		s.line = ""
		s.data = nil
		s.token = nil

		// Scan until there is a non-empty line to parse.
		for {
			if !s.sc.Scan() {
				// If there was an error, return. Otherwise mark as EOF.
				if err := s.sc.Err(); err != nil {
					return false
				}

				s.eof = true
				break
			}

			// Set the current line. Add the new line for parsing.
			s.line = s.sc.Text()

			// Skip empty lines.
			if s.line != "" {
				s.data = s.sc.Bytes()
				break
			}
		}
	}

	adv, token, trail, err := s.scanField(s.data)

	// Advance the section of the line for the next field.
	s.data = s.data[adv:]

	if trail && len(s.data) == 0 {
		s.trail = trail
	}

	if err != nil {
		if !s.ContinueOnError {
			s.err = err
			return false
		}

		// Degrade: the rest of the line is the field text.
		s.token = s.data
		s.data = nil
		s.eor = true

		return true
	}

	s.token = token

	if !s.trail && s.eof && len(s.data) == 0 {
		return false
	}

	return true
}

func (s *Scanner) scanField(data []byte) (int, []byte, bool, error) {
	// A separator ended the previous line; emit the trailing empty field.
	if s.trail {
		s.column++
		s.eor = true
		s.trail = false
		return 0, data, false, nil
	}

	if len(data) == 0 {
		return 0, nil, false, nil
	}

	// Previous iteration was the end of a record. Increment line and
	// reset column.
	if s.eor {
		s.column = 0
		s.lineno++
	}

	s.column++
	s.eor = false

	// Quoted field.
	if data[0] == '"' {
		var (
			eq    int
			oq    bool
			c, pc byte
		)

		// Scan until the end quote is found.
		for i := 1; i < len(data); i++ {
			c = data[i]

			// Successive quotes denote an escaped quote. Clear the
			// previous byte so escaped quotes are not overlapped.
			if c == '"' {
				if pc == '"' {
					pc = 0
					oq = false
					eq++
					continue
				}

				// Open quote.
				if oq {
					return 0, nil, false, errUnescapedQuote
				}

				oq = true
			}

			// End of field with a trailing separator.
			if pc == '"' && c == s.sep {
				return i + 1, unescapeQuotes(data[1:i-1], eq), true, nil
			}

			// Shift previous characters.
			pc = c
		}

		// Ran out of bytes.
		s.eor = true

		// Final character in the line is the closing quote of the last field.
		if c == '"' {
			return len(data), unescapeQuotes(data[1:len(data)-1], eq), false, nil
		}

		// End of line without a terminated quote.
		return 0, nil, false, errUnterminatedField
	}

	// Unquoted field. Quotes are only special at the start of a
	// field, so a mid-field quote is literal text.
	for i, c := range data {
		if c == s.sep {
			s.eor = false
			return i + 1, data[0:i], true, nil
		}
	}

	// Ran out of bytes.
	s.eor = true

	return len(data), data, false, nil
}

// unescapeQuotes removes escaped quotes from the field in place.
func unescapeQuotes(b []byte, count int) []byte {
	if count == 0 {
		return b
	}

	for i, j := 0, 0; i < len(b); i, j = i+1, j+1 {
		b[j] = b[i]

		if b[i] == '"' && (i < len(b)-1 && b[i+1] == '"') {
			i++
		}
	}

	return b[:len(b)-count]
}
