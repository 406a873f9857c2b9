package domain

import (
	"time"

	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type User struct {
	ID                    int64              `gorm:"column:id;primaryKey" json:"id"`
	Email                 string             `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Name                  string             `gorm:"column:name" json:"name"`
	SubscriptionStatus    SubscriptionStatus `gorm:"column:subscription_status;default:inactive;index" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time         `gorm:"column:subscription_expires_at" json:"subscription_expires_at,omitempty"`
	CreatedAt             time.Time          `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

// BeforeSave stores times in UTC; SQL expiry checks compare them as text on SQLite.
func (u *User) BeforeSave(*gorm.DB) error {
	if u.SubscriptionExpiresAt != nil {
		utc := u.SubscriptionExpiresAt.UTC()
		u.SubscriptionExpiresAt = &utc
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return nil
}

// SubscriptionActive reports whether the status is active and expiry is strictly after now.
func (u *User) SubscriptionActive(now time.Time) bool {
	if u.SubscriptionStatus != SubscriptionActive || u.SubscriptionExpiresAt == nil {
		return false
	}
	return u.SubscriptionExpiresAt.After(now)
}
