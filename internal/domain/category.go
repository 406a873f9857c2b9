package domain

type Category struct {
	ID     int64  `gorm:"column:id;primaryKey" json:"id"`
	NameEN string `gorm:"column:name_en;not null" json:"name_en"`
	NameFR string `gorm:"column:name_fr;not null" json:"name_fr"`
	Icon   string `gorm:"column:icon" json:"icon"`
}

func (Category) TableName() string { return "categories" }

// CategoryView is a category with its name resolved to one locale.
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
