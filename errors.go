package wad

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to match them.
var (
	// ErrInvalidFile is matched by every InvalidFileError.
	ErrInvalidFile = errors.New("invalid WAD file")

	// ErrInvalidLumpName is matched by every InvalidLumpNameError.
	ErrInvalidLumpName = errors.New("invalid lump name")
)

// Reasons reported by InvalidFileError
const (
	ReasonTooSmall       = "too small"
	ReasonWrongMagic     = "wrong magic"
	ReasonEmptyOrCorrupt = "empty or corrupt"
	ReasonDirOutOfBounds = "directory out of bounds"
)

// ReasonNonASCII is reported by InvalidLumpNameError
const ReasonNonASCII = "non-ASCII byte in name"

// InvalidFileError reports a header or directory that cannot be read.
type InvalidFileError struct {
	Reason string
}

func invalidFile(reason string) *InvalidFileError {
	return &InvalidFileError{Reason: reason}
}

func (e *InvalidFileError) Error() string {
	return ErrInvalidFile.Error() + ": " + e.Reason
}

func (e *InvalidFileError) Is(target error) bool {
	return target == ErrInvalidFile
}

// InvalidLumpNameError reports a directory entry whose name is not 7-bit ASCII.
type InvalidLumpNameError struct {
	Reason string
	Bytes  []byte // raw 8 byte name field
	Index  int    // directory index of the entry, -1 if unknown
}

func (e *InvalidLumpNameError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s (% x)", ErrInvalidLumpName, e.Reason, e.Bytes)
	}
	return fmt.Sprintf("%s at directory entry %d: %s (% x)", ErrInvalidLumpName, e.Index, e.Reason, e.Bytes)
}

func (e *InvalidLumpNameError) Is(target error) bool {
	return target == ErrInvalidLumpName
}
