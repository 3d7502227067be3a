package cli

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	SetVersion(v)
	t.Cleanup(func() { version = original })
}

func TestVersionCmd_Full(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gsearch version 1.4.0")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_Short(t *testing.T) {
	withVersion(t, "1.4.0")
	defer func() { versionShort = false }()

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", strings.TrimSpace(out))
}

func TestVersionCmd_DevDefault(t *testing.T) {
	withVersion(t, "dev")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gsearch version dev")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "extra")
	assert.Error(t, err)
}
