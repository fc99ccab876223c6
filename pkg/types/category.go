package types

// Category is an identified, named item organized by an Index.
// Identity is the CategoryID; Name is not unique and is used only to break
// ranking ties. An Index never modifies the categories it stores.
type Category struct {
	CategoryID string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
}

// Validate checks that the category can be stored.
// Returns ErrInvalidID if CategoryID is empty.
func (c Category) Validate() error {
	if c.CategoryID == "" {
		return ErrInvalidID
	}
	return nil
}

// IDs returns the ids of categories in order.
func IDs(categories []Category) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.CategoryID
	}
	return ids
}
