package main

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/waylist/internal/cli"
	"github.com/rshade/waylist/pkg/version"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version is semver", func(t *testing.T) {
		_, err := semver.NewVersion(version.GetVersion())
		require.NoError(t, err)
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "waylist", root.Use)
	})
}
