package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingController.Error(), ErrMissingFileReader.Error())
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingController.Error(), "controller")
	assert.Contains(t, ErrMissingFileReader.Error(), "file reader")
}
