package models

import "time"

type Reservation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Reference      string    `gorm:"type:varchar(36);unique;not null" json:"reference"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string    `gorm:"type:varchar(50);not null" json:"phone"`
	Guests         int       `gorm:"not null" json:"guests"`
	Date           string    `gorm:"type:varchar(20);not null" json:"date"`
	Time           string    `gorm:"type:varchar(20);not null" json:"time"`
	TableID        *uint     `gorm:"index" json:"table_id,omitempty"`
	Table          *Table    `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	SpecialRequest string    `gorm:"type:text" json:"special_request"`
	IsProposal     bool      `gorm:"not null;default:false" json:"is_proposal"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
