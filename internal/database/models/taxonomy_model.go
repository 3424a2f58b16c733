package models

import "github.com/google/uuid"

type Category struct {
	ID   uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Icon *string   `json:"icon" gorm:"type:text"`
}

func (m Category) TableName() string {
	return "categories"
}

type City struct {
	ID   uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" gorm:"type:text;uniqueIndex;not null"`
}

func (m City) TableName() string {
	return "cities"
}

type District struct {
	ID     uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CityID uuid.UUID `json:"cityId" gorm:"type:uuid;not null"`
	Name   string    `json:"name" gorm:"type:text;not null"`
	Slug   string    `json:"slug" gorm:"type:text;not null"`
}

func (m District) TableName() string {
	return "districts"
}
