package manifest

import "errors"

var (
	// ErrNotFound is returned when the manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")

	// ErrMalformed is returned when the manifest is not a JSON object with a
	// string name and an array-of-strings dependencies field.
	ErrMalformed = errors.New("malformed manifest")

	// ErrAlreadyPresent is returned by Add when the name is already listed.
	ErrAlreadyPresent = errors.New("already a dependency")

	// ErrNotListed is returned by Remove when the name is not listed.
	ErrNotListed = errors.New("not listed as a dependency")

	// ErrIncompatibleManager is returned when the manifest's uvm constraint
	// excludes the running manager version.
	ErrIncompatibleManager = errors.New("manifest requires a different uvm version")
)
