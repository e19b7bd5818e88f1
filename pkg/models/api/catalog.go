package api

type SavingsItem struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

type SavingsGroup struct {
	Category string        `json:"category"`
	Items    []SavingsItem `json:"items"`
}

type SavingsCatalog struct {
	Groups     []SavingsGroup `json:"groups"`
	MaxSavings float64        `json:"max_savings"`
}

type Requirement struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sectors     []string `json:"sectors"`
	CloudOnly   bool     `json:"cloud_only"`
	Mandatory   bool     `json:"mandatory"`
	BaseCost    float64  `json:"base_cost"`
}
