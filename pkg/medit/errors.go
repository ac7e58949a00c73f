package medit

import "errors"

// Sentinel errors for classification with errors.Is.
var (
	// ErrUnexpectedEOF means the input ran out while more tokens were
	// required to complete the current block.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformedKeyword means a token in keyword position was not
	// purely alphabetic.
	ErrMalformedKeyword = errors.New("malformed keyword")

	// ErrUnsupportedVersion means the file declares a format version
	// other than the single supported one.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrDimensionNotSet means a Vertices block appeared before any
	// Dimension marker.
	ErrDimensionNotSet = errors.New("dimension not set")

	// ErrMalformedNumber means a token expected to be numeric did not
	// parse as one.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnknownKeyword means a keyword is in none of the recognized
	// tables and is not the terminal keyword.
	ErrUnknownKeyword = errors.New("unknown keyword")

	// ErrMultipleLabels means a snapshot carries more than one label
	// sequence for a point set or cell family, which the format cannot
	// represent.
	ErrMultipleLabels = errors.New("multiple label sequences")
)
