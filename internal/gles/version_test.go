package gles_test

import (
	"testing"

	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/gles/glestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want gles.Version
	}{
		{"4.1 Metal - 76.3", gles.Version{Major: 4, Minor: 1}},
		{"4.6.0 NVIDIA 535.54.03", gles.Version{Major: 4, Minor: 6}},
		{"OpenGL ES 2.0 build 1.9@2961956", gles.Version{Major: 2, Minor: 0, ES: true}},
		{"OpenGL ES 3.2 V@415.0", gles.Version{Major: 3, Minor: 2, ES: true}},
		{"OpenGL ES-CM 1.1", gles.Version{Major: 1, Minor: 1, ES: true}},
	}
	for _, tc := range cases {
		got, err := gles.ParseVersion(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := gles.ParseVersion("garbage")
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	ctx := glestest.New()
	ctx.VersionString = "OpenGL ES 2.0 test"
	_, err := gles.CheckVersion(ctx, gles.ES20)
	require.NoError(t, err)

	ctx.VersionString = "OpenGL ES-CM 1.1"
	_, err = gles.CheckVersion(ctx, gles.ES20)
	var unsupported *gles.UnsupportedPlatformError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 1, unsupported.Have.Major)
	assert.Contains(t, err.Error(), "OpenGL ES 2.0")

	ctx.VersionString = ""
	_, err = gles.CheckVersion(ctx, gles.Core41)
	require.ErrorAs(t, err, &unsupported)

	// Only the version query happens before the decision.
	for _, call := range ctx.Calls {
		assert.Equal(t, "Version", call.Name)
	}
}
