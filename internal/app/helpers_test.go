package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixturePath(t *testing.T, parts ...string) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	return filepath.Join(append([]string{root, "fixtures"}, parts...)...)
}

func classpathSources(t *testing.T, addons ...string) Sources {
	t.Helper()
	src := Sources{
		Classpath: []string{
			fixturePath(t, "classpath", "zul"),
			fixturePath(t, "classpath", "zkbind"),
		},
	}
	for _, addon := range addons {
		src.Addons = append(src.Addons, fixturePath(t, "DefinitionLoadersTest", addon))
	}
	return src
}
