package domain

import "time"

type ProfileType string

const (
	ProfileProfessional ProfileType = "professional"
	ProfileAmateur      ProfileType = "amateur"
)

type Provider struct {
	ID           int64       `gorm:"column:id;primaryKey" json:"id"`
	Name         string      `gorm:"column:name;not null" json:"name"`
	Email        string      `gorm:"column:email" json:"email"`
	Phone        string      `gorm:"column:phone" json:"phone"`
	Bio          string      `gorm:"column:bio" json:"bio"`
	ProfileType  ProfileType `gorm:"column:profile_type;not null;index" json:"profile_type"`
	City         string      `gorm:"column:city" json:"city"`
	Country      string      `gorm:"column:country" json:"country"`
	Address      string      `gorm:"column:address" json:"address"`
	Rating       float64     `gorm:"column:rating;default:0" json:"rating"`
	TotalReviews int         `gorm:"column:total_reviews;default:0" json:"total_reviews"`
	Verified     bool        `gorm:"column:verified;default:false" json:"verified"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
}

func (Provider) TableName() string { return "providers" }
