// Package report exports bookmarks and history.
//
// Writers implement the Writer interface:
//   - JSONWriter: the same {"url","title"} shapes the data files use
//   - MarkdownWriter: tables for sharing or pasting into notes
//   - TextWriter: plain lines for the terminal
//
// NewWriter picks a writer by format name.
package report
