package report

import (
	"time"

	"github.com/nao1215/neodynium/internal/model"
)

// Export is the data written by a Writer.
type Export struct {
	// Version is the neodynium version that produced the export.
	Version string `json:"version,omitempty"`

	// GeneratedAt is when the export was created.
	GeneratedAt time.Time `json:"generated_at"`

	// Bookmarks in insertion order.
	Bookmarks model.Bookmarks `json:"bookmarks"`

	// History, oldest first.
	History model.History `json:"history"`
}

// NewExport creates an Export stamped with the current time. The lists are
// copied.
func NewExport(bookmarks model.Bookmarks, history model.History, version string) *Export {
	return &Export{
		Version:     version,
		GeneratedAt: time.Now(),
		Bookmarks:   bookmarks.Clone(),
		History:     history.Clone(),
	}
}
