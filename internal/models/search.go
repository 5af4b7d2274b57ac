package models

// SearchState is a directory search resumed by a "Load more" button
type SearchState struct {
	Page     int    `json:"page"`
	City     string `json:"city"`
	Category string `json:"category"`
	Query    string `json:"query"`
}
