package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats recomputes the dashboard aggregates on every view:
// today's bookings, proposal bookings, the five most recent bookings by date,
// and table availability.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found"))
		return
	}
	if role, ok := roleInterface.(string); !ok || role != "admin" {
		utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
		return
	}

	today := time.Now().Format("2006-01-02")

	var stats struct {
		TodayReservations  int64                `json:"today_reservations"`
		TotalProposals     int64                `json:"total_proposals"`
		RecentReservations []models.Reservation `json:"recent_reservations"`
		TableStats         struct {
			Available int64 `json:"available"`
			Reserved  int64 `json:"reserved"`
		} `json:"table_stats"`
	}

	ac.DB.Model(&models.Reservation{}).Where("date = ?", today).Count(&stats.TodayReservations)
	ac.DB.Model(&models.Reservation{}).Where("is_proposal = ?", true).Count(&stats.TotalProposals)

	if err := ac.DB.Order("date DESC").Limit(5).Find(&stats.RecentReservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.DB.Model(&models.Table{}).Where("status = ?", models.TableAvailable).Count(&stats.TableStats.Available)
	ac.DB.Model(&models.Table{}).Where("status = ?", models.TableReserved).Count(&stats.TableStats.Reserved)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
