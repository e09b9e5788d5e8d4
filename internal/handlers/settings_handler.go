package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, audit: auditDispatcher}
}

type UpdateSettingsRequest struct {
	CreditEnabled *bool   `json:"credit_enabled,omitempty"`
	Theme         *string `json:"theme,omitempty"`
}

// Get devolve a linha única de configuração, criando o padrão se o
// banco ainda não tiver uma.
func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.SystemSettings
	err := h.db.First(&settings, models.SystemSettingsRowID).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.DefaultSystemSettings()
		if err := h.db.Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_settings"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var settings models.SystemSettings
	err := h.db.First(&settings, models.SystemSettingsRowID).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.DefaultSystemSettings()
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}

	if req.CreditEnabled != nil {
		settings.CreditEnabled = *req.CreditEnabled
	}
	if req.Theme != nil {
		if *req.Theme != "light" && *req.Theme != "dark" {
			httperr.BadRequest(c, "invalid_theme", "Tema inválido.")
			return
		}
		settings.Theme = *req.Theme
	}

	if err := h.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_settings"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: middleware.CurrentUserID(c),
		Action: "settings_updated",
		Entity: "system_settings",
	})

	c.JSON(http.StatusOK, settings)
}
