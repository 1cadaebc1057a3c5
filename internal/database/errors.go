package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("invalid preset name")
)

// Resource names used in OpError.
const (
	ResourcePreset     = "preset"
	ResourceSetting    = "setting"
	ResourceCompletion = "completion"
)

type OpError struct {
	Op       string
	Resource string
	Name     string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Name: name, Err: err}
}
