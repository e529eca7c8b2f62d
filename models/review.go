package models

import "time"

type Review struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	ReservationID uint         `gorm:"not null;index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reservation,omitempty"`
	Rating        int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string       `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
}
