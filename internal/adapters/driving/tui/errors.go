package tui

import "errors"

// ErrMissingController is returned when the controller is not provided.
var ErrMissingController = errors.New("tui: controller is required")

// ErrMissingFileReader is returned when no file reader is provided.
var ErrMissingFileReader = errors.New("tui: file reader is required")
