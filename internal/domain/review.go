package domain

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	ServiceID int64     `gorm:"column:service_id;not null;index" json:"service_id"`
	UserID    *int64    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Rating    float64   `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`

	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Review) TableName() string { return "reviews" }

// BeforeSave keeps created_at in UTC so recency ordering holds on SQLite.
func (r *Review) BeforeSave(*gorm.DB) error {
	r.CreatedAt = r.CreatedAt.UTC()
	return nil
}

// ReviewView is a review with the reviewer's name, nil when anonymous.
type ReviewView struct {
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UserName  *string   `json:"user_name"`
}

// Stats holds the homepage counters.
type Stats struct {
	Providers   int64 `json:"providers"`
	Services    int64 `json:"services"`
	ActiveUsers int64 `json:"active_users"`
}
