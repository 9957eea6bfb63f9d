// Package catalog holds the read-only option lists the form offers: model
// identifiers, subjects, and result quantities, plus the defaults a fresh
// session starts with.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"gopkg.in/yaml.v3"
)

const (
	embeddedCatalogReference       = "embedded default catalog"
	emptyModelsErrorMessage        = "catalog.models is empty"
	emptySubjectsErrorMessage      = "catalog.subjects is empty"
	emptyQuantitiesErrorMessage    = "catalog.quantities is empty"
	catalogReadErrorFormat         = "read catalog %s: %w"
	catalogUnmarshalErrorFormat    = "unmarshal catalog %s: %w"
	catalogEmptyContentErrorFormat = "catalog %s is empty"
)

var (
	//go:embed default_catalog.yaml
	embeddedCatalogBytes []byte
)

// Defaults are the field values a fresh session is seeded with. The default
// model is always the first entry of Models and is not configurable here.
type Defaults struct {
	Subject    string `yaml:"subject"`
	Quantity   string `yaml:"quantity"`
	Favourites string `yaml:"favourites"`
}

// Catalog is the static option data supplied at startup.
type Catalog struct {
	Models     []string `yaml:"models"`
	Subjects   []string `yaml:"subjects"`
	Quantities []string `yaml:"quantities"`
	Defaults   Defaults `yaml:"defaults"`
}

// Load parses the catalog at path, or the embedded default when path is
// empty, and validates that every option list has at least one entry.
func Load(path string) (Catalog, error) {
	content := embeddedCatalogBytes
	reference := embeddedCatalogReference
	if path != "" {
		fileBytes, readErr := os.ReadFile(filepath.Clean(path))
		if readErr != nil {
			return Catalog{}, fmt.Errorf(catalogReadErrorFormat, path, readErr)
		}
		content = fileBytes
		reference = path
	}
	if len(content) == 0 {
		return Catalog{}, fmt.Errorf(catalogEmptyContentErrorFormat, reference)
	}

	var parsedCatalog Catalog
	if err := yaml.Unmarshal(content, &parsedCatalog); err != nil {
		return Catalog{}, fmt.Errorf(catalogUnmarshalErrorFormat, reference, err)
	}

	if len(parsedCatalog.Models) == 0 {
		return Catalog{}, errors.New(emptyModelsErrorMessage)
	}
	if len(parsedCatalog.Subjects) == 0 {
		return Catalog{}, errors.New(emptySubjectsErrorMessage)
	}
	if len(parsedCatalog.Quantities) == 0 {
		return Catalog{}, errors.New(emptyQuantitiesErrorMessage)
	}
	return parsedCatalog, nil
}

// DefaultModel is the first entry of the model list.
func (c Catalog) DefaultModel() string { return c.Models[0] }

// HasModel reports whether name is one of the selectable models.
func (c Catalog) HasModel(name string) bool {
	for _, modelName := range c.Models {
		if modelName == name {
			return true
		}
	}
	return false
}
