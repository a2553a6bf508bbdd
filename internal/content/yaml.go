package content

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/ooplearn/backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/oop_content.yaml
var fixturesFS embed.FS

const defaultFixture = "fixtures/oop_content.yaml"

// document is the YAML layout of a content file
type document struct {
	Lessons []models.Lesson `yaml:"lessons"`
	Quizzes []models.Quiz   `yaml:"quizzes"`
}

// LoadDefault builds a catalog from the content embedded into the binary
func LoadDefault() (*Catalog, error) {
	data, err := fixturesFS.ReadFile(defaultFixture)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded content: %w", err)
	}
	return LoadYAML(bytes.NewReader(data))
}

// LoadFile builds a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML decodes lessons and quizzes from r and builds a catalog from them.
//
// Unknown fields are rejected so typos in content files fail fast.
func LoadYAML(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return NewCatalog(nil, nil)
		}
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	catalog, err := NewCatalog(doc.Lessons, doc.Quizzes)
	if err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return catalog, nil
}
