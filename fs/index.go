package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rndocs"
)

// Index file names, relative to the output root.
const (
	SDKIndexFile         = "EXPO-SDK-INDEX.md"
	ReactNativeIndexFile = "REACT-NATIVE-INDEX.md"
)

const sdkQuickReference = `## Quick Reference

### Most Common Packages
- expo-camera: Camera access and barcode scanning
- expo-image-picker: Select images/videos from library or camera
- expo-location: Geolocation and geocoding
- expo-notifications: Push and local notifications
- expo-file-system: File system access
- expo-secure-store: Encrypted key-value storage
- expo-auth-session: OAuth/OpenID authentication
- expo-router: File-based routing (recommended)
- expo-sqlite: SQLite database
- expo-av / expo-video: Audio and video playback
`

// Ensure Indexer implements rndocs.IndexWriter at compile time.
var _ rndocs.IndexWriter = (*Indexer)(nil)

// Indexer generates the index documents from the files present on disk.
type Indexer struct {
	baseDir string

	// SDKDir and ReactNativeDir are the listed subdirectories.
	SDKDir         string
	ReactNativeDir string
}

// NewIndexer creates an Indexer for the given output root that lists the
// sdkDir and reactNativeDir subdirectories.
func NewIndexer(baseDir, sdkDir, reactNativeDir string) *Indexer {
	return &Indexer{
		baseDir:        baseDir,
		SDKDir:         sdkDir,
		ReactNativeDir: reactNativeDir,
	}
}

// NewRegistryIndexer creates an Indexer that lists the output directories
// of the registry's Expo SDK and React Native sets.
func NewRegistryIndexer(baseDir string, registry *rndocs.Registry) (*Indexer, error) {
	sdk, err := registry.Set(rndocs.SetExpoSDK)
	if err != nil {
		return nil, err
	}
	rn, err := registry.Set(rndocs.SetReactNative)
	if err != nil {
		return nil, err
	}
	return NewIndexer(baseDir, sdk.Dir, rn.Dir), nil
}

// WriteIndexes regenerates both index files, overwriting existing ones.
// A missing subdirectory is indexed as empty.
func (ix *Indexer) WriteIndexes(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sdk, err := listDir(filepath.Join(ix.baseDir, ix.SDKDir))
	if err != nil {
		return err
	}
	if err := ix.write(SDKIndexFile, FormatSDKIndex(ix.SDKDir, sdk)); err != nil {
		return err
	}

	rn, err := listDir(filepath.Join(ix.baseDir, ix.ReactNativeDir))
	if err != nil {
		return err
	}
	return ix.write(ReactNativeIndexFile, FormatReactNativeIndex(ix.ReactNativeDir, rn))
}

func (ix *Indexer) write(name, content string) error {
	return os.WriteFile(filepath.Join(ix.baseDir, name), []byte(content), 0644)
}

// FormatSDKIndex renders the Expo SDK index for the given file names.
func FormatSDKIndex(dir string, files []string) string {
	var b strings.Builder
	b.WriteString("# Expo SDK Reference Index\n\n## Available Packages\n\n")
	b.WriteString(bulletList(dir, "", files))
	b.WriteString("\n\n")
	b.WriteString(sdkQuickReference)
	return b.String()
}

// FormatReactNativeIndex renders the React Native index. Files are grouped
// by their category prefix; files in other categories are left out.
func FormatReactNativeIndex(dir string, files []string) string {
	sections := []struct {
		heading string
		prefix  string
	}{
		{"Core Components", "components-"},
		{"APIs", "apis-"},
		{"Guides", "guides-"},
	}

	var b strings.Builder
	b.WriteString("# React Native Reference Index\n")
	for _, s := range sections {
		var matched []string
		for _, f := range files {
			if strings.HasPrefix(f, s.prefix) {
				matched = append(matched, f)
			}
		}
		b.WriteString("\n## ")
		b.WriteString(s.heading)
		b.WriteString("\n")
		b.WriteString(bulletList(dir, s.prefix, matched))
		b.WriteString("\n")
	}
	return b.String()
}

func bulletList(dir, prefix string, files []string) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		label := strings.Replace(strings.TrimPrefix(f, prefix), ".md", "", 1)
		lines = append(lines, "- ["+label+"](./"+dir+"/"+f+")")
	}
	return strings.Join(lines, "\n")
}

// listDir returns entry names in directory order.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
