package textab

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input text file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// PipelineError represents an error in one stage of a conversion.
type PipelineError struct {
	Stage string // "read", "parse", "write"
	Path  string
	Err   error
}

func (e *PipelineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError creates a new PipelineError.
func NewPipelineError(stage, path string, err error) *PipelineError {
	return &PipelineError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
