package models

import "time"

type Menu struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	IsSpicy     bool      `gorm:"not null;default:false" json:"is_spicy"`
	IsSpecial   bool      `gorm:"not null;default:false" json:"is_special"`
	ImagePath   *string   `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
