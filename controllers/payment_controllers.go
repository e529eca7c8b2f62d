package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

// PaymentController exposes the payment provider to the admin surface only.
// Booking itself never charges anything.
type PaymentController struct {
	DB       *gorm.DB
	Provider services.PaymentProvider
}

func NewPaymentController(db *gorm.DB, provider services.PaymentProvider) *PaymentController {
	return &PaymentController{DB: db, Provider: provider}
}

// GetPaymentConfig hands the dashboard the client key and environment.
func (pc *PaymentController) GetPaymentConfig(c *gin.Context) {
	if err := pc.Provider.ValidateConfig(); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment config", pc.Provider.ClientConfig())
}

// ChargeDeposit creates a QRIS deposit charge for a reservation.
func (pc *PaymentController) ChargeDeposit(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	var req struct {
		Amount int64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := pc.DB.First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	resp, err := pc.Provider.ChargeDeposit(reservation, req.Amount)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.InfoLogger.Printf("Deposit charge created for reservation %s (amount=%d)", reservation.Reference, req.Amount)
	utils.RespondJSON(c, http.StatusCreated, "Deposit charge created", resp)
}

// CheckDepositStatus asks the provider for the state of a deposit charge.
func (pc *PaymentController) CheckDepositStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	status, err := pc.Provider.CheckStatus(orderID)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Deposit status", gin.H{
		"order_id": orderID,
		"status":   status,
	})
}
