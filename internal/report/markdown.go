package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs exports as GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(export *Export) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, export)
	w.writeBookmarks(md, export)
	w.writeHistory(md, export)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, export *Export) {
	md.H1("Neodynium Export")
	md.PlainText("")

	version := export.Version
	if version == "" {
		version = "-"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", export.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Version", version},
			{"Bookmarks", strconv.Itoa(len(export.Bookmarks))},
			{"History entries", strconv.Itoa(len(export.History))},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeBookmarks(md *markdown.Markdown, export *Export) {
	md.H2("Bookmarks")
	md.PlainText("")

	if len(export.Bookmarks) == 0 {
		md.Note("No bookmarks saved.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(export.Bookmarks))
	for i, b := range export.Bookmarks {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			escapeCell(b.Title),
			"[" + escapeCell(truncateString(b.URL, 80)) + "](" + b.URL + ")",
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "URL"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeHistory(md *markdown.Markdown, export *Export) {
	md.H2("History")
	md.PlainText("")

	if len(export.History) == 0 {
		md.Tip("History is empty.")
		md.PlainText("")
		return
	}

	// Most recent first reads better in a document.
	items := make([]string, 0, len(export.History))
	for i := len(export.History) - 1; i >= 0; i-- {
		items = append(items, "`"+export.History[i]+"`")
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Exported by [neodynium](https://github.com/nao1215/neodynium)*")
}

// escapeCell keeps pipes and newlines from breaking a table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// truncateString truncates a string to maxLen bytes with an ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
