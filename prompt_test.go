package cocoacanvas

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := map[string]struct {
		In     string
		Answer bool
	}{
		"yes":        {"y\n", true},
		"yes-upper":  {"Y\n", true},
		"yes-padded": {"  y  \n", true},
		"no":         {"n\n", false},
		"word":       {"yes\n", false},
		"empty":      {"\n", false},
		"eof":        {"", false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer

			c := TerminalConfirmer(strings.NewReader(test.In), &out)

			if got := c.Confirm("count? "); got != test.Answer {
				t.Errorf("expected %v, got %v", test.Answer, got)
			}

			if out.String() != "count? " {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestAutoConfirm(t *testing.T) {
	if !AutoConfirm(true).Confirm("x") {
		t.Error("expected true")
	}

	if AutoConfirm(false).Confirm("x") {
		t.Error("expected false")
	}
}
