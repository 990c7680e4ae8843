// Package extension implements the extension registry, the loader that
// discovers extension folders, and the hook dispatcher.
//
// Extensions are ordinary Go values built by a Factory registered under a
// slug ID. A folder under the extensions root opts into an extension with an
// extension.yaml manifest naming that ID, its priority, and its settings.
//
// An extension advertises what it does through optional capability
// interfaces:
//
//   - Loadable: OnLoad runs once, right after the extension joins the set.
//   - URLRewriter: RewriteURL may replace a URL before it is rendered.
//   - PageLoadObserver: OnPageLoad is told about every finished page load.
//
// Failures in extension code, panics included, are logged and isolated. One
// broken extension never stops the others from loading or running.
package extension
