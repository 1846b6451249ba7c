package cocoacanvas

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer gates expensive operations behind an operator decision.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AutoConfirm answers every prompt with a fixed decision, for
// non-interactive runs.
func AutoConfirm(v bool) Confirmer {
	return ConfirmerFunc(func(string) bool {
		return v
	})
}

// TerminalConfirmer writes prompts to out and reads y/n answers from
// in. Anything other than a case-insensitive "y" declines.
func TerminalConfirmer(in io.Reader, out io.Writer) Confirmer {
	br := bufio.NewReader(in)

	return ConfirmerFunc(func(prompt string) bool {
		fmt.Fprint(out, prompt)

		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return false
		}

		return strings.EqualFold(strings.TrimSpace(line), "y")
	})
}
