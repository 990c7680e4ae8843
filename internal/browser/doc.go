// Package browser is the window/controller that ties the address bar and
// tabs to the engine, the extension hooks and the renderer.
//
// Navigation from the address bar runs: trim, normalize, URL hooks, render.
// When a page finishes loading the window records it in the history,
// notifies the extensions and, when a journal is configured, writes a
// visit row. Window implements extension.Host.
package browser
