package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadCmd_Flags(t *testing.T) {
	flag := uploadCmd.Flags().Lookup("watch")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
}

func TestUploadCmd_RequiresFilesOrWatch(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "upload")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least one file")
}

func TestUploadCmd_UploadsFiles(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	paths := writeFiles(t, map[string]string{"a.txt": "alpha", "b.txt": "beta"})

	out, _, err := execute(t, append([]string{"upload"}, paths...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Successfully processed 2 documents")
	assert.Len(t, fake.docs, 2)
	assert.Equal(t, "alpha", fake.contents["id-a.txt"])
}

func TestUploadCmd_MissingFile(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "upload", filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading files")
	assert.Empty(t, fake.docs)
}
