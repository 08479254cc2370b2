package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/internal/build"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer

	root := NewRootCommand()
	root.AddCommand(NewVersionCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "graphkb version "+build.Version)
	require.Contains(t, out.String(), "commit id "+build.Commit)
}

func TestVersionCommandRejectsArguments(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(NewVersionCommand())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "extra"})
	require.Error(t, root.Execute())
}
