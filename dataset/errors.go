package dataset

import "errors"

var (
	// ErrMissingColumn is returned when a required column is absent from the header
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedRow is returned when a field cannot be parsed into its column type
	ErrMalformedRow = errors.New("malformed row")

	// ErrEmptyDataset is returned when the input has no header line
	ErrEmptyDataset = errors.New("dataset is empty")
)
