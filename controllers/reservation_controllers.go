package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/i18n"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB, service *services.ReservationService) *ReservationController {
	return &ReservationController{DB: db, Service: service}
}

// CreateReservation handles the public booking form.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name           string `json:"name" binding:"required"`
		Email          string `json:"email" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
		Guests         int    `json:"guests" binding:"required"`
		Date           string `json:"date" binding:"required"`
		Time           string `json:"time" binding:"required"`
		TableID        *uint  `json:"table_id"`
		SpecialRequest string `json:"special_request"`
		IsProposal     bool   `json:"is_proposal"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))

	result, err := rc.Service.Create(services.CreateReservationInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Guests:         req.Guests,
		Date:           req.Date,
		Time:           req.Time,
		TableID:        req.TableID,
		SpecialRequest: req.SpecialRequest,
		IsProposal:     req.IsProposal,
	}, locale)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrTableUnavailable):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, i18n.T(locale, i18n.KeyReservationConfirmed), gin.H{
		"reservation":   result.Reservation,
		"reference":     result.Reservation.Reference,
		"sms_confirmed": result.SMSConfirmed,
	})
}

// GetAllReservations lists bookings for the admin, most recent date first.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Preload("Table").Order("date DESC").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID returns one booking for the admin detail view.
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	var reservation models.Reservation
	if err := rc.DB.Preload("Table").First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}
