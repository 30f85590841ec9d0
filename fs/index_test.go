package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/rndocs"
	"github.com/fwojciec/rndocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestFormatSDKIndex(t *testing.T) {
	t.Parallel()

	got := fs.FormatSDKIndex("expo-sdk", []string{"audio.md", "camera.md"})

	want := "# Expo SDK Reference Index\n\n## Available Packages\n\n" +
		"- [audio](./expo-sdk/audio.md)\n- [camera](./expo-sdk/camera.md)\n\n" +
		"## Quick Reference\n\n### Most Common Packages\n"
	assert.True(t, strings.HasPrefix(got, want), got)
	assert.Contains(t, got, "- expo-router: File-based routing (recommended)\n")
	assert.True(t, strings.HasSuffix(got, "- expo-av / expo-video: Audio and video playback\n"))
}

func TestFormatReactNativeIndex(t *testing.T) {
	t.Parallel()

	t.Run("groups files by category prefix", func(t *testing.T) {
		t.Parallel()

		files := []string{
			"apis-alert.md",
			"components-view.md",
			"guides-style.md",
			"native-native-modules-intro.md",
			"notes.txt",
		}

		got := fs.FormatReactNativeIndex("react-native", files)

		want := "# React Native Reference Index\n\n" +
			"## Core Components\n- [view](./react-native/components-view.md)\n\n" +
			"## APIs\n- [alert](./react-native/apis-alert.md)\n\n" +
			"## Guides\n- [style](./react-native/guides-style.md)\n"
		assert.Equal(t, want, got)
	})

	t.Run("empty listing keeps headings", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatReactNativeIndex("react-native", nil)

		assert.Equal(t, "# React Native Reference Index\n\n## Core Components\n\n\n## APIs\n\n\n## Guides\n\n", got)
	})
}

func TestIndexer_WriteIndexes(t *testing.T) {
	t.Parallel()

	t.Run("lists files present on disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, "expo-sdk", "camera.md"))
		touch(t, filepath.Join(dir, "expo-sdk", "audio.md"))
		touch(t, filepath.Join(dir, "react-native", "components-view.md"))
		touch(t, filepath.Join(dir, "react-native", "native-native-components-ios.md"))

		err := fs.NewIndexer(dir, "expo-sdk", "react-native").WriteIndexes(context.Background())
		require.NoError(t, err)

		sdk := readFile(t, filepath.Join(dir, fs.SDKIndexFile))
		assert.Contains(t, sdk, "- [camera](./expo-sdk/camera.md)")
		assert.Contains(t, sdk, "- [audio](./expo-sdk/audio.md)")
		assert.Less(t, strings.Index(sdk, "audio"), strings.Index(sdk, "camera"), "directory order")

		rn := readFile(t, filepath.Join(dir, fs.ReactNativeIndexFile))
		assert.Contains(t, rn, "- [view](./react-native/components-view.md)")
		assert.NotContains(t, rn, "native-components-ios")
		_, err = os.Stat(filepath.Join(dir, "react-native", "native-native-components-ios.md"))
		assert.NoError(t, err, "omitted files stay on disk")
	})

	t.Run("lists the configured directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, "sdk-docs", "camera.md"))
		touch(t, filepath.Join(dir, "expo-sdk", "stale.md"))
		touch(t, filepath.Join(dir, "rn-docs", "apis-alert.md"))

		err := fs.NewIndexer(dir, "sdk-docs", "rn-docs").WriteIndexes(context.Background())
		require.NoError(t, err)

		sdk := readFile(t, filepath.Join(dir, fs.SDKIndexFile))
		assert.Contains(t, sdk, "- [camera](./sdk-docs/camera.md)")
		assert.NotContains(t, sdk, "stale")
		rn := readFile(t, filepath.Join(dir, fs.ReactNativeIndexFile))
		assert.Contains(t, rn, "- [alert](./rn-docs/apis-alert.md)")
	})

	t.Run("missing directories index as empty", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := fs.NewIndexer(dir, "expo-sdk", "react-native").WriteIndexes(context.Background())
		require.NoError(t, err)

		sdk := readFile(t, filepath.Join(dir, fs.SDKIndexFile))
		assert.Contains(t, sdk, "## Available Packages\n\n\n\n## Quick Reference")
		rn := readFile(t, filepath.Join(dir, fs.ReactNativeIndexFile))
		assert.Equal(t, fs.FormatReactNativeIndex("react-native", nil), rn)
	})

	t.Run("overwrites existing index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, fs.SDKIndexFile))

		require.NoError(t, fs.NewIndexer(dir, "expo-sdk", "react-native").WriteIndexes(context.Background()))

		assert.True(t, strings.HasPrefix(readFile(t, filepath.Join(dir, fs.SDKIndexFile)), "# Expo SDK Reference Index"))
	})

	t.Run("fails when output root is missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "missing")

		err := fs.NewIndexer(dir, "expo-sdk", "react-native").WriteIndexes(context.Background())

		assert.Error(t, err)
	})
}

func TestNewRegistryIndexer(t *testing.T) {
	t.Parallel()

	t.Run("takes directories from the registry", func(t *testing.T) {
		t.Parallel()

		registry := &rndocs.Registry{Sets: []*rndocs.PageSet{
			{Name: rndocs.SetExpoSDK, Dir: "sdk-docs"},
			{Name: rndocs.SetReactNative, Dir: "rn-docs"},
		}}

		ix, err := fs.NewRegistryIndexer(t.TempDir(), registry)

		require.NoError(t, err)
		assert.Equal(t, "sdk-docs", ix.SDKDir)
		assert.Equal(t, "rn-docs", ix.ReactNativeDir)
	})

	t.Run("fails when a set is missing", func(t *testing.T) {
		t.Parallel()

		registry := &rndocs.Registry{Sets: []*rndocs.PageSet{
			{Name: rndocs.SetExpoSDK, Dir: "expo-sdk"},
		}}

		_, err := fs.NewRegistryIndexer(t.TempDir(), registry)

		assert.Equal(t, rndocs.ENOTFOUND, rndocs.ErrorCode(err))
	})
}
