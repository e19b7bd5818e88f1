package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/adapters"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/models/store"
	"github.com/tidwall/gjson"
)

//go:embed referentiels.json
var defaultDocument []byte

// Default returns the catalog shipped with the binary.
func Default() (*domain.Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads the catalog document at path. An empty path selects the
// embedded catalog.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a catalog document. Entries keep the order in which they
// appear in the document.
func Parse(data []byte) (*domain.Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalog is not valid JSON")
	}

	root := gjson.ParseBytes(data)

	economies, err := decodeCollection[store.SavingsEntry](root, "economies")
	if err != nil {
		return nil, err
	}
	referentiels, err := decodeCollection[store.RequirementEntry](root, "referentiels")
	if err != nil {
		return nil, err
	}

	return adapters.MapCatalogDocumentToDomain(store.CatalogDocument{
		Economies:    economies,
		Referentiels: referentiels,
	})
}

func decodeCollection[T any](root gjson.Result, key string) ([]store.Keyed[T], error) {
	collection := root.Get(key)
	if !collection.Exists() {
		return nil, fmt.Errorf("catalog has no %q collection", key)
	}
	if !collection.IsObject() {
		return nil, fmt.Errorf("catalog %q must be an object keyed by identifier", key)
	}

	var (
		entries []store.Keyed[T]
		err     error
	)
	collection.ForEach(func(id, value gjson.Result) bool {
		var entry T
		if uerr := json.Unmarshal([]byte(value.Raw), &entry); uerr != nil {
			err = fmt.Errorf("invalid %s entry %q: %w", key, id.String(), uerr)
			return false
		}
		entries = append(entries, store.Keyed[T]{ID: id.String(), Entry: entry})
		return true
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
