package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// source when no ANSI renderer can be built (e.g. output is not a tty).
func printMarkdown(w io.Writer, source string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(w, source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Fprintln(w, source)
		return
	}
	fmt.Fprint(w, out)
}
