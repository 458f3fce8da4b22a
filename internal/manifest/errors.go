package manifest

import "errors"

var (
	// ErrRead indicates the manifest file could not be read (missing, unreadable).
	ErrRead = errors.New("reading manifest")
	// ErrParse indicates the manifest content is not valid JSON.
	ErrParse = errors.New("parsing manifest")
	// ErrNotObject indicates the manifest is valid JSON but not an object.
	ErrNotObject = errors.New("manifest is not a JSON object")
	// ErrWrite indicates the manifest could not be written back.
	ErrWrite = errors.New("writing manifest")
)
