package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-collect/collect/adapt"
	"github.com/lguimbarda/min-collect/collect/container"
)

func makeTree(t *testing.T) string {
	root := t.TempDir()
	for _, dir := range []string{"a", "a/b", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for _, file := range []string{"a/one.txt", "a/b/two.txt", "c/three.log", "top.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte(file), 0644))
	}
	return root
}

func rel(t *testing.T, root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestWalk(t *testing.T) {
	root := makeTree(t)

	var want []string
	require.NoError(t, filepath.WalkDir(root, func(path string, _ os.DirEntry, err error) error {
		want = append(want, path)
		return err
	}))

	paths := Walk(root)
	got := container.NewSlice[string]().CollectThenFinish(paths)
	require.NoError(t, paths.Err())
	require.Equal(t, want, got)
}

func TestWalkFiles(t *testing.T) {
	root := makeTree(t)

	paths := WalkFiles(root)
	got := container.NewSlice[string]().CollectThenFinish(paths)
	require.NoError(t, paths.Err())
	require.Equal(t, []string{"a/b/two.txt", "a/one.txt", "c/three.log", "top.txt"}, rel(t, root, got))
}

func TestWalkStopsEarly(t *testing.T) {
	root := makeTree(t)

	paths := WalkFiles(root)
	got := adapt.NewTake[string](container.NewSlice[string](), 1).CollectThenFinish(paths)
	require.Equal(t, []string{"a/b/two.txt"}, rel(t, root, got))

	lo, _ := paths.SizeHint()
	require.Equal(t, 3, lo)
}

func TestWalkMissingRoot(t *testing.T) {
	paths := Walk(filepath.Join(t.TempDir(), "missing"))
	_, ok := paths.Next()
	require.False(t, ok)
	require.ErrorIs(t, paths.Err(), os.ErrNotExist)
}

func TestGlob(t *testing.T) {
	root := makeTree(t)

	matches, err := Glob(filepath.Join(root, "*", "*.txt"))
	require.NoError(t, err)
	got := container.NewSlice[string]().CollectThenFinish(matches)
	require.Equal(t, []string{"a/one.txt"}, rel(t, root, got))

	_, err = Glob("[")
	require.Error(t, err)
}
