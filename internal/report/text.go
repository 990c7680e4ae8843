package report

import (
	"fmt"
	"io"
	"strings"
)

// TextWriter outputs exports as plain text for the terminal.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write implements Writer.
func (w *TextWriter) Write(export *Export) (int, error) {
	var sb strings.Builder

	sb.WriteString("NEODYNIUM EXPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", export.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&sb, "Bookmarks (%d)\n", len(export.Bookmarks))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, b := range export.Bookmarks {
		fmt.Fprintf(&sb, "  %s\n    %s\n", b.Title, b.URL)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "History (%d)\n", len(export.History))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for i, u := range export.History {
		fmt.Fprintf(&sb, "  %3d  %s\n", i+1, u)
	}

	return io.WriteString(w.output, sb.String())
}
