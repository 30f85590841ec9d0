// Package yaml loads page set registries from YAML tables.
// The default registry is embedded in the binary.
package yaml

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/rndocs"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

type file struct {
	Sets []setEntry `yaml:"sets"`
}

type setEntry struct {
	Name         string      `yaml:"name"`
	Dir          string      `yaml:"dir"`
	URL          string      `yaml:"url"`
	File         string      `yaml:"file"`
	Title        string      `yaml:"title"`
	Category     string      `yaml:"category"`
	ShowCategory bool        `yaml:"show_category"`
	Pages        []pageEntry `yaml:"pages"`
}

// pageEntry is either a bare identifier or a {path, category} mapping.
type pageEntry struct {
	Path     string
	Category string
}

func (e *pageEntry) UnmarshalYAML(value *yamlv3.Node) error {
	if value.Kind == yamlv3.ScalarNode {
		e.Path = value.Value
		return nil
	}

	var m struct {
		Path     string `yaml:"path"`
		Category string `yaml:"category"`
	}
	if err := value.Decode(&m); err != nil {
		return err
	}
	e.Path = m.Path
	e.Category = m.Category
	return nil
}

// Load returns the registry embedded in the binary.
func Load() (*rndocs.Registry, error) {
	return Decode(bytes.NewReader(registryYAML))
}

// Decode reads a registry table from r.
// Returns EINVALID if a set is missing its name, dir or url, or if two sets
// share a name. Page identifiers are taken as-is.
func Decode(r io.Reader) (*rndocs.Registry, error) {
	var f file
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	reg := &rndocs.Registry{}
	seen := make(map[string]bool, len(f.Sets))
	for i, s := range f.Sets {
		if s.Name == "" {
			return nil, rndocs.Errorf(rndocs.EINVALID, "set #%d: name required", i+1)
		}
		if seen[s.Name] {
			return nil, rndocs.Errorf(rndocs.EINVALID, "set %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if s.Dir == "" {
			return nil, rndocs.Errorf(rndocs.EINVALID, "set %q: dir required", s.Name)
		}
		if s.URL == "" {
			return nil, rndocs.Errorf(rndocs.EINVALID, "set %q: url required", s.Name)
		}

		set := &rndocs.PageSet{
			Name:         s.Name,
			Dir:          s.Dir,
			URLPattern:   s.URL,
			FilePattern:  s.File,
			TitlePattern: s.Title,
			Category:     s.Category,
			ShowCategory: s.ShowCategory,
			Pages:        make([]rndocs.Page, 0, len(s.Pages)),
		}
		if set.FilePattern == "" {
			set.FilePattern = "{slug}"
		}
		if set.TitlePattern == "" {
			set.TitlePattern = "{id}"
		}
		for _, p := range s.Pages {
			category := p.Category
			if category == "" {
				category = s.Category
			}
			set.Pages = append(set.Pages, rndocs.Page{ID: p.Path, Category: category})
		}
		reg.Sets = append(reg.Sets, set)
	}

	return reg, nil
}
