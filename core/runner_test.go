package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRunnerEmptyTool(t *testing.T) {
	r := &ToolRunner{}
	_, err := r.Run("photo.jpg", "-f")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolNotConfigured))
}

func TestToolRunnerMissingBinary(t *testing.T) {
	r := NewToolRunner(&Config{Tool: "surgery-no-such-binary"})
	_, err := r.Run("photo.jpg", "-f")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolNotConfigured))
}
