package services

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/i18n"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/utils"
)

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrTableUnavailable = errors.New("table is not available")
)

type CreateReservationInput struct {
	Name           string
	Email          string
	Phone          string
	Guests         int
	Date           string
	Time           string
	TableID        *uint
	SpecialRequest string
	IsProposal     bool
}

// ReservationResult reports the persisted booking plus whether the
// confirmation SMS went out. The booking stands either way.
type ReservationResult struct {
	Reservation  models.Reservation
	SMSConfirmed bool
}

type ReservationService struct {
	DB  *gorm.DB
	SMS SMSSender
}

func NewReservationService(db *gorm.DB, sms SMSSender) *ReservationService {
	return &ReservationService{DB: db, SMS: sms}
}

// Create persists the reservation and, when a table was picked, marks that
// table reserved. Both writes commit or roll back as one unit. The SMS is
// sent after commit and never fails the booking.
func (rs *ReservationService) Create(input CreateReservationInput, locale language.Tag) (*ReservationResult, error) {
	reservation := models.Reservation{
		Reference:      uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Guests:         input.Guests,
		Date:           input.Date,
		Time:           input.Time,
		TableID:        input.TableID,
		SpecialRequest: input.SpecialRequest,
		IsProposal:     input.IsProposal,
		Status:         "pending",
	}

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		if input.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *input.TableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTableNotFound
				}
				return err
			}
			if table.Status != models.TableAvailable {
				return ErrTableUnavailable
			}
			table.Status = models.TableReserved
			if err := tx.Save(&table).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ReservationResult{Reservation: reservation}

	if rs.SMS != nil {
		body := i18n.T(locale, i18n.KeyReservationSMS, input.Date, input.Time)
		if err := rs.SMS.Send(input.Phone, body); err != nil {
			utils.ErrorLogger.Printf("Failed to send SMS for reservation %s: %v", reservation.Reference, err)
		} else {
			result.SMSConfirmed = true
		}
	}

	utils.InfoLogger.Printf("Reservation %s created for %s (%d guests, %s %s)",
		reservation.Reference, reservation.Name, reservation.Guests, reservation.Date, reservation.Time)

	return result, nil
}
