package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Manifests are the persisted source of user-authored exporters: a YAML
// document with `name`, `path`, `extras` (extra name → the palette slot the
// author expects it to carry, informational) and `formatter`, the raw
// template body.
type manifestDoc struct {
	Name      string    `yaml:"name"`
	Path      string    `yaml:"path"`
	Extras    yaml.Node `yaml:"extras"`
	Formatter string    `yaml:"formatter"`
}

// ParseManifest decodes manifest text and compiles its formatter into a
// Template. The extras mapping is walked as raw nodes so that duplicate
// keys, which decoding into a map would silently collapse, are reported.
func ParseManifest(data []byte) (*Template, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tinterrors.NewTemplateParseError("", "malformed manifest document", err)
	}

	if doc.Name == "" {
		return nil, tinterrors.NewTemplateParseError("", "manifest is missing a name", nil)
	}
	if doc.Formatter == "" {
		return nil, tinterrors.NewTemplateParseError(doc.Name, "manifest is missing a formatter", nil)
	}

	extras, err := extraNames(doc.Name, &doc.Extras)
	if err != nil {
		return nil, err
	}

	return Parse(doc.Name, doc.Path, doc.Formatter, extras)
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinterrors.NewTemplateParseError(templateNameForPath(path), fmt.Sprintf("cannot read %s", path), err)
	}
	return ParseManifest(data)
}

// LoadManifestDir parses every .yaml/.yml manifest in dir and registers the
// results, stopping at the first failure.
func LoadManifestDir(registry *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return tinterrors.NewTemplateParseError("", fmt.Sprintf("cannot read template directory %s", dir), err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
		default:
			continue
		}

		t, err := LoadManifest(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := registry.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func templateNameForPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func extraNames(template string, node *yaml.Node) ([]string, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, tinterrors.NewTemplateParseError(template, "extras must be a mapping of name to palette slot", nil)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	names := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, exists := seen[key]; exists {
			return nil, tinterrors.NewDuplicateKeyError(key)
		}
		seen[key] = struct{}{}
		names = append(names, key)
	}
	return names, nil
}
