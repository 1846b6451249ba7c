package dsv

import (
	"bufio"
	"io"
)

// CountRows streams the input and counts data lines, excluding the
// header. Blank lines are skipped, matching the record scanner.
// Memory use stays bounded regardless of file size.
func CountRows(r io.Reader) (int64, error) {
	br := bufio.NewReaderSize(r, 256<<10)

	// Skip the header line.
	if err := skipLine(br); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}

	var (
		count      int64
		hasContent bool
	)

	for {
		b, err := br.ReadSlice('\n')

		if len(b) > 0 {
			end := len(b)
			terminated := b[end-1] == '\n'
			if terminated {
				end--
			}

			if end > 0 {
				hasContent = true
			}

			if terminated {
				if hasContent {
					count++
				}
				hasContent = false
			}
		}

		switch err {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			// Final line without a trailing newline.
			if hasContent {
				count++
			}
			return count, nil
		default:
			return count, err
		}
	}
}

// skipLine consumes input through the next newline.
func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')

		switch err {
		case nil:
			return nil
		case bufio.ErrBufferFull:
		default:
			return err
		}
	}
}
