package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every configuration error
	ErrInvalidConfig = errors.New("invalid render config")
	// ErrWorkerFailed is matched by every error raised inside a render worker
	ErrWorkerFailed = errors.New("render worker failed")
	// ErrIncompleteRender is returned when the workers finished without covering every pixel
	ErrIncompleteRender = errors.New("render did not cover every pixel")
)

// ConfigError reports the config field that failed validation
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// WorkerError wraps the failure that aborted a render
type WorkerError struct {
	Worker int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("%v: worker %d: %v", ErrWorkerFailed, e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() []error {
	return []error{ErrWorkerFailed, e.Err}
}
