package service

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/objectops/recipe"

	"github.com/stretchr/testify/require"
)

const testRecipe = `
name: rename-user
steps:
  - op: move
    from: user.name
    to: profile.displayName
  - op: remove
    paths: [user.password]
`

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func writeRecipe(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "recipe.yaml")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func compile(t *testing.T, r *recipe.Recipe) *recipe.Program {
	t.Helper()

	program, err := recipe.Compile(r)
	require.NoError(t, err)

	return program
}
