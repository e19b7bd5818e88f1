package api

type Session struct {
	ID              string   `json:"id"`
	Stage           int      `json:"stage"`
	Profile         *Profile `json:"profile,omitempty"`
	SelectedSavings []string `json:"selected_savings"`
}

type SavingsSelection struct {
	SelectedSavings []string `json:"selected_savings"`
}

type Error struct {
	Error string `json:"error"`
}
