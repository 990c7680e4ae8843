// Package builtin provides the extensions that ship with neodynium.
//
//   - adblock rewrites navigations to known ad domains to about:blank.
//   - https-upgrade rewrites plain http URLs to https, except for local hosts.
//   - visit-log writes every finished page load to the host logger.
//
// Register adds all of them to an extension.Registry.
package builtin
