package extension

import "errors"

// Extension errors.
var (
	// ErrUnknownExtension is returned when a manifest names an ID with no
	// registered factory. The loader reports it as a missing entry point.
	ErrUnknownExtension = errors.New("missing entry point: no extension registered with this id")

	// ErrDuplicateExtension is returned when an ID is registered twice.
	ErrDuplicateExtension = errors.New("extension already registered")

	// ErrInvalidExtensionID is returned when an ID is empty or not a slug.
	ErrInvalidExtensionID = errors.New("extension id must be a non-empty slug")

	// ErrManifestNotFound is returned when a folder has no extension.yaml.
	ErrManifestNotFound = errors.New("extension manifest not found")

	// ErrExtensionPanic wraps a panic recovered from extension code.
	ErrExtensionPanic = errors.New("extension panicked")

	// ErrNilExtension is returned when a factory returns neither an
	// extension nor an error.
	ErrNilExtension = errors.New("factory returned a nil extension")
)
