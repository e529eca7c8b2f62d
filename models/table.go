package models

import "time"

const (
	TableAvailable = "available"
	TableReserved  = "reserved"
)

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"type:varchar(50);unique;not null" json:"number"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Location  string    `gorm:"type:varchar(100);not null" json:"location"`
	Status    string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
