package domain

import "time"

type PricingType string

const (
	PricingHourly PricingType = "hourly"
	PricingFixed  PricingType = "fixed"
	PricingBoth   PricingType = "both"
)

// Service is a priced offering owned by one provider under one category.
type Service struct {
	ID            int64       `gorm:"column:id;primaryKey" json:"id"`
	ProviderID    int64       `gorm:"column:provider_id;not null;index" json:"provider_id"`
	CategoryID    int64       `gorm:"column:category_id;not null;index" json:"category_id"`
	TitleEN       string      `gorm:"column:title_en;not null" json:"title_en"`
	TitleFR       string      `gorm:"column:title_fr;not null" json:"title_fr"`
	DescriptionEN string      `gorm:"column:description_en" json:"description_en"`
	DescriptionFR string      `gorm:"column:description_fr" json:"description_fr"`
	PricingType   PricingType `gorm:"column:pricing_type;not null" json:"pricing_type"`
	HourlyRate    *float64    `gorm:"column:hourly_rate;type:numeric(10,2)" json:"hourly_rate"`
	FixedPrice    *float64    `gorm:"column:fixed_price;type:numeric(10,2)" json:"fixed_price"`
	Currency      string      `gorm:"column:currency;default:USD" json:"currency"`
	Available     bool        `gorm:"column:available;default:true;index" json:"available"`
	CreatedAt     time.Time   `gorm:"column:created_at" json:"created_at"`

	Provider *Provider `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Service) TableName() string { return "services" }

// ServiceView is a provider's service as shown on the provider page.
type ServiceView struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PricingType PricingType `json:"pricing_type"`
	HourlyRate  *float64    `json:"hourly_rate"`
	FixedPrice  *float64    `json:"fixed_price"`
	Currency    string      `json:"currency"`
	Available   bool        `json:"available"`
	Category    string      `json:"category"`
}

// SearchResult is one provider x service x category row of a search.
type SearchResult struct {
	ProviderID         int64       `json:"provider_id"`
	ProviderName       string      `json:"provider_name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	Bio                string      `json:"bio"`
	ProfileType        ProfileType `json:"profile_type"`
	City               string      `json:"city"`
	Country            string      `json:"country"`
	Address            string      `json:"address"`
	Rating             float64     `json:"rating"`
	TotalReviews       int         `json:"total_reviews"`
	Verified           bool        `json:"verified"`
	ServiceID          int64       `json:"service_id"`
	ServiceTitle       string      `json:"service_title"`
	ServiceDescription string      `json:"service_description"`
	PricingType        PricingType `json:"pricing_type"`
	HourlyRate         *float64    `json:"hourly_rate"`
	FixedPrice         *float64    `json:"fixed_price"`
	Currency           string      `json:"currency"`
	CategoryName       string      `json:"category_name"`
}
