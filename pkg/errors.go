package explorer

import "fmt"

// ErrInvalidDirectory represents a data directory that does not exist
// or is not a directory.
type ErrInvalidDirectory struct {
	Path string
}

func (e *ErrInvalidDirectory) Error() string {
	return fmt.Sprintf("invalid directory %q", e.Path)
}

// ErrParseRange represents a malformed ToF range string.
type ErrParseRange struct {
	Input  string
	Reason string
}

func (e *ErrParseRange) Error() string {
	return fmt.Sprintf("error parsing range %q: %s", e.Input, e.Reason)
}

// ErrOpenFile represents an error when opening a data file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrMissingDataset represents a data file that lacks one of the
// expected datasets.
type ErrMissingDataset struct {
	Filename string
	Dataset  string
	Err      error
}

func (e *ErrMissingDataset) Error() string {
	return fmt.Sprintf("error reading dataset %q from file %q: %v", e.Dataset, e.Filename, e.Err)
}

// ErrEmptyInput represents a directory with no matching data files.
type ErrEmptyInput struct {
	Path string
}

func (e *ErrEmptyInput) Error() string {
	return fmt.Sprintf("no data files (.h5/.hdf5) found under %q", e.Path)
}

// ErrCalibration represents an unusable pair of reference peaks.
type ErrCalibration struct {
	Reason string
}

func (e *ErrCalibration) Error() string {
	return fmt.Sprintf("calibration error: %s", e.Reason)
}
