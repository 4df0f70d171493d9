package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFileTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpg"), 0o644))

	ref := time.Date(2021, 6, 15, 12, 30, 0, 0, time.UTC)
	require.NoError(t, SetFileTimes(path, ref))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(ref))
}

func TestSetFileTimesMissingFile(t *testing.T) {
	err := SetFileTimes(filepath.Join(t.TempDir(), "nope.jpg"), time.Now())
	assert.Error(t, err)
}
