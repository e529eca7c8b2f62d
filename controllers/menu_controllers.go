package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus lists the menu for the landing page, optionally by ?category=.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu

	query := mc.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetSpecials lists the chef's specials.
func (mc *MenuController) GetSpecials(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Where("is_special = ?", true).Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Today's specials", menus)
}
