package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Cookies []seedItem `yaml:"cookies"`
}

type seedItem struct {
	Name          string    `yaml:"name"`
	Ingredients   []string  `yaml:"ingredients"`
	Substitutions yaml.Node `yaml:"substitutions"`
	Process       string    `yaml:"process"`
	Rating        float64   `yaml:"rating"`
	Reviews       []string  `yaml:"reviews"`
}

// Default builds the catalog from the embedded seed.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultSeed))
}

// LoadFile reads a YAML seed from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes a YAML seed. Unknown fields are rejected and substitution
// keys are validated here rather than at display time.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc seedFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeed
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]*Item, 0, len(doc.Cookies))
	for idx, raw := range doc.Cookies {
		subs, err := decodeSubstitutions(&raw.Substitutions)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", idx, raw.Name, err)
		}
		items = append(items, NewItem(raw.Name, raw.Ingredients, subs, raw.Process, raw.Rating, raw.Reviews))
	}
	return New(items)
}

// decodeSubstitutions walks the mapping node directly so declaration order
// survives decoding.
func decodeSubstitutions(node *yaml.Node) ([]Substitution, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: substitutions must be a mapping (line %d)", ErrInvalidItem, node.Line)
	}

	subs := make([]Substitution, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: substitution at line %d must map text to text", ErrInvalidItem, key.Line)
		}
		subs = append(subs, Substitution{Ingredient: key.Value, Text: value.Value})
	}
	return subs, nil
}
