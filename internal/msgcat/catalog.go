// Package msgcat holds every line of text the game shows. English defaults are
// embedded; a directory of YAML files can replace any of them.
package msgcat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.en.yaml
var defaultMessages []byte

const defaultSource = "messages.en.yaml"

var ErrInvalidCatalog = errors.New("invalid message catalog")

type entry struct {
	tpl    *template.Template
	source string // file:line the text came from
}

// Catalog is immutable once New returns, so it is safe for concurrent use.
type Catalog struct {
	entries map[Key]entry
}

// New loads the embedded messages, applies overrides from dir when it is set and
// checks that every key the game prints is present and renders with its fields.
func New(overrideDir string) (*Catalog, error) {
	c := &Catalog{entries: make(map[Key]entry)}
	if err := c.merge(defaultSource, defaultMessages, nil); err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(overrideDir); dir != "" {
		if err := c.mergeDir(dir); err != nil {
			return nil, err
		}
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) mergeDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read messages dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	claimed := make(map[Key]string)
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := c.merge(name, raw, claimed); err != nil {
			return err
		}
	}
	return nil
}

// merge parses one YAML document and stores its leaves. When claimed is non-nil a
// key set by an earlier file in the same layer is an error.
func (c *Catalog) merge(source string, raw []byte, claimed map[Key]string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidCatalog, source, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	return walk(doc.Content[0], "", func(key Key, n *yaml.Node) error {
		where := fmt.Sprintf("%s:%d", source, n.Line)
		if claimed != nil {
			if prev, ok := claimed[key]; ok {
				return fmt.Errorf("%w: duplicate override key %q in %s and %s", ErrInvalidCatalog, key, prev, where)
			}
			claimed[key] = where
		}
		tpl, err := template.New(string(key)).Option("missingkey=error").Parse(n.Value)
		if err != nil {
			return fmt.Errorf("%w: %s at %s: %v", ErrInvalidCatalog, key, where, err)
		}
		c.entries[key] = entry{tpl: tpl, source: where}
		return nil
	})
}

func walk(n *yaml.Node, prefix string, leaf func(Key, *yaml.Node) error) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			name := n.Content[i].Value
			if prefix != "" {
				name = prefix + "." + name
			}
			if err := walk(n.Content[i+1], name, leaf); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("%w: value without a key at line %d", ErrInvalidCatalog, n.Line)
		}
		if n.ShortTag() != "!!str" {
			return fmt.Errorf("%w: %s at line %d is %s, want a string", ErrInvalidCatalog, prefix, n.Line, n.ShortTag())
		}
		return leaf(Key(prefix), n)
	default:
		return fmt.Errorf("%w: %s at line %d must be a string or a mapping", ErrInvalidCatalog, prefix, n.Line)
	}
}

// check renders every required key with exactly the fields its caller passes, so
// a missing entry or a misspelt placeholder fails here rather than mid-game.
func (c *Catalog) check() error {
	var problems []string
	for key, fields := range required {
		e, ok := c.entries[key]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s is missing", key))
			continue
		}
		sample := make(map[string]string, len(fields))
		for _, f := range fields {
			sample[f] = f
		}
		var b strings.Builder
		if err := e.tpl.Execute(&b, sample); err != nil {
			problems = append(problems, fmt.Sprintf("%s (%s): %v", key, e.source, err))
			continue
		}
		if strings.TrimSpace(b.String()) == "" {
			problems = append(problems, fmt.Sprintf("%s (%s) is empty", key, e.source))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
}

func (c *Catalog) Has(key Key) bool {
	_, ok := c.entries[key]
	return ok
}

// Render executes the template for key. Fields missing from data are errors.
func (c *Catalog) Render(key Key, data any) (string, error) {
	e, ok := c.entries[key]
	if !ok {
		return "", fmt.Errorf("message not found: %s", key)
	}
	var b strings.Builder
	if err := e.tpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Text is Render for call sites that must print something; it falls back to the key.
func (c *Catalog) Text(key Key, data any) string {
	s, err := c.Render(key, data)
	if err != nil {
		return string(key)
	}
	return s
}
