package revgrad

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional
// information necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrEmptyTrainingSet = Error{"Training set has no examples"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents errors resulting from a vector whose length disagrees
// with what the Network expects: inputs whose length is not the input size, or
// targets whose length is not the output size.
type SizeMismatchError struct {
	Expected, Got int

	// What names the offending vector -- "inputs" or "targets"
	What string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Wrong number of %s (expected %d, got %d)", err.What, err.Expected, err.Got)
}
