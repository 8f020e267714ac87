package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/wincenter/internal/version"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	v := version.GetVersion()
	assert.NotEmpty(t, v)

	if !version.IsDevBuild() {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v, "Version should match semver pattern")
	}
}

func TestGetFullVersion(t *testing.T) {
	t.Parallel()

	expected := version.GetVersion() + " (commit: " + version.GetCommit() + ", built: " + version.GetDate() + ")"
	assert.Equal(t, expected, version.GetFullVersion())
}

func TestBuildInfoNotEmpty(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, version.GetCommit())
	assert.NotEmpty(t, version.GetDate())
}
