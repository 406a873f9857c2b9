package provider

import "aidemoi/internal/domain"

// Detail is everything shown on a provider page.
type Detail struct {
	Provider *domain.Provider     `json:"provider"`
	Services []domain.ServiceView `json:"services"`
	Reviews  []domain.ReviewView  `json:"reviews"`
}
