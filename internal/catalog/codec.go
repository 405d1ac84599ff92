package catalog

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a Catalog to its wire document form. The document is
// JSON-equivalent: any receiver agreeing on this encoding can decode it.
func Encode(cat Catalog) ([]byte, error) {
	b, err := json.Marshal(cat)
	if err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	return b, nil
}

// Decode parses a wire document into a Catalog and rejects a version
// mismatch with ErrVersionMismatch (incorrectCommandSpecificationVersion).
func Decode(data []byte) (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}
	if cat.Version != CurrentVersion {
		return Catalog{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, cat.Version, CurrentVersion)
	}
	return cat, nil
}
