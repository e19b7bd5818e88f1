package store

// SavingsEntry is an "economies" entry of the catalog document.
type SavingsEntry struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Categorie   string  `json:"categorie"`
	Economie    float64 `json:"economie"`
}

// RequirementEntry is a "referentiels" entry of the catalog document.
type RequirementEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sectors     []string `json:"sectors"`
	Cloud       bool     `json:"cloud"`
	Mandatory   bool     `json:"mandatory"`
	BaseCost    float64  `json:"baseCost"`
}

// Keyed pairs a catalog entry with its identifier, keeping document order.
type Keyed[T any] struct {
	ID    string
	Entry T
}

type CatalogDocument struct {
	Economies    []Keyed[SavingsEntry]
	Referentiels []Keyed[RequirementEntry]
}
