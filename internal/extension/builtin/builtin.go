package builtin

import (
	"fmt"
	"strings"

	"github.com/nao1215/neodynium/internal/extension"
)

// Extension IDs.
const (
	AdblockID      = "adblock"
	HTTPSUpgradeID = "https-upgrade"
	VisitLogID     = "visit-log"
)

// Register adds every built-in extension to registry.
func Register(registry *extension.Registry) error {
	factories := []struct {
		id      string
		factory extension.Factory
	}{
		{AdblockID, NewAdblock},
		{HTTPSUpgradeID, NewHTTPSUpgrade},
		{VisitLogID, NewVisitLog},
	}
	for _, f := range factories {
		if err := registry.Register(f.id, f.factory); err != nil {
			return fmt.Errorf("failed to register built-in extension: %w", err)
		}
	}
	return nil
}

// splitList splits a comma separated setting, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
