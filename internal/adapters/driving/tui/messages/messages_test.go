package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp_String(t *testing.T) {
	tests := []struct {
		op       Op
		expected string
	}{
		{OpUpload, "upload"},
		{OpStopwords, "stopwords"},
		{OpSearch, "search"},
		{OpClear, "clear"},
		{OpFetch, "fetch"},
		{Op(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.String())
		})
	}
}

func TestPromptKind_String(t *testing.T) {
	tests := []struct {
		kind     PromptKind
		expected string
	}{
		{PromptNone, "none"},
		{PromptUpload, "upload"},
		{PromptStopwords, "stopwords"},
		{PromptClear, "clear"},
		{PromptKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
