package dsv

import (
	"bytes"
	"strings"
	"testing"
)

func TestCountRows(t *testing.T) {
	tests := map[string]struct {
		In    string
		Count int64
	}{
		"basic": {
			"A\tB\tC\n1\t\t3\n4\t5\t\n7\t8\t9\n",
			3,
		},
		"no-trailing-newline": {
			"A\tB\n1\t2\n3\t4",
			2,
		},
		"header-only": {
			"A\tB\n",
			0,
		},
		"empty": {
			"",
			0,
		},
		"blank-lines-skipped": {
			"A\n1\n\n2\n\n",
			2,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := CountRows(bytes.NewBufferString(test.In))
			if err != nil {
				t.Fatal(err)
			}

			if n != test.Count {
				t.Errorf("expected %d rows, got %d", test.Count, n)
			}
		})
	}
}

func TestCountRowsLongLines(t *testing.T) {
	// Lines far larger than the internal buffer still count once.
	long := strings.Repeat("x", 1<<20)
	in := "header\n" + long + "\n" + long + "\n"

	n, err := CountRows(bytes.NewBufferString(in))
	if err != nil {
		t.Fatal(err)
	}

	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}
