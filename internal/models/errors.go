package models

import "errors"

var (
	// ErrTransport is returned when the source document cannot be retrieved.
	ErrTransport = errors.New("transport failure")

	// ErrStructuralMismatch is returned when the document no longer has the
	// expected table layout. A well-formed document with no matching rows is
	// not a mismatch.
	ErrStructuralMismatch = errors.New("document structure mismatch")

	// ErrMalformedNumber is returned when a sort key is not numeric.
	ErrMalformedNumber = errors.New("malformed numeric field")
)
