package rndocs

import "strings"

// Page set names used by the embedded registry.
const (
	SetExpoSDK     = "expo-sdk"
	SetExpoGuides  = "expo-guides"
	SetReactNative = "react-native"
)

// Page identifies one documentation page to fetch.
type Page struct {
	// ID is a URL path segment or package name, e.g. "router/layouts".
	ID string

	// Category is a free-form grouping label.
	Category string
}

// PageSet is an ordered collection of pages that share a URL template and
// an output directory.
//
// Patterns may contain the placeholders {id}, {slug} and {category}. {slug}
// is the page ID with every "/" replaced by "-".
type PageSet struct {
	Name string

	// Dir is the output subdirectory, relative to the output root.
	Dir string

	URLPattern   string
	FilePattern  string
	TitlePattern string

	// Category is assigned to pages listed without an explicit category.
	Category string

	// ShowCategory adds a "Category:" line to the document header.
	ShowCategory bool

	Pages []Page
}

// URL returns the address the page is fetched from.
func (s *PageSet) URL(p Page) string {
	return expand(s.URLPattern, p)
}

// FileName returns the name of the Markdown file written for the page.
func (s *PageSet) FileName(p Page) string {
	return expand(s.FilePattern, p) + ".md"
}

// Title returns the header title of the page's document.
func (s *PageSet) Title(p Page) string {
	return expand(s.TitlePattern, p)
}

func expand(pattern string, p Page) string {
	r := strings.NewReplacer(
		"{id}", p.ID,
		"{slug}", strings.ReplaceAll(p.ID, "/", "-"),
		"{category}", p.Category,
	)
	return r.Replace(pattern)
}

// Registry holds the page sets known to the program, in run order.
type Registry struct {
	Sets []*PageSet
}

// Set returns the page set with the given name.
// Returns ENOTFOUND if no such set exists.
func (r *Registry) Set(name string) (*PageSet, error) {
	for _, s := range r.Sets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "page set %q not found", name)
}
