package builtin

import "github.com/nao1215/neodynium/internal/extension"

// VisitLog logs every finished page load with the host's current title.
type VisitLog struct {
	host extension.Host
}

// NewVisitLog builds the visit-log extension.
func NewVisitLog(host extension.Host, _ map[string]string) (extension.Extension, error) {
	return &VisitLog{host: host}, nil
}

// ID implements extension.Extension.
func (v *VisitLog) ID() string { return VisitLogID }

// Description implements extension.Describer.
func (v *VisitLog) Description() string { return "Logs every page that finishes loading" }

// OnPageLoad implements extension.PageLoadObserver.
func (v *VisitLog) OnPageLoad(url string) error {
	v.host.Logger().Info("page loaded", "url", url, "title", v.host.CurrentTitle())
	return nil
}
