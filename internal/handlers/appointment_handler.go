package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/appointment"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	ucAppointment "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db         *gorm.DB
	advanceUC  *ucAppointment.AdvanceStatus
	finalizeUC *ucAppointment.Finalize
	audit      *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	advanceUC *ucAppointment.AdvanceStatus,
	finalizeUC *ucAppointment.Finalize,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		advanceUC:  advanceUC,
		finalizeUC: finalizeUC,
		audit:      auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientID    *uint  `json:"client_id"`
	Service     string `json:"service" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type FinalizeAppointmentRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	// O painel legado embute o telefone no nome ("Nome|Telefone").
	clientName := strings.TrimSpace(req.ClientName)
	if phone := strings.TrimSpace(req.ClientPhone); phone != "" {
		clientName = clientName + "|" + phone
	}

	ap := models.Appointment{
		ClientName: clientName,
		ClientID:   req.ClientID,
		Service:    strings.TrimSpace(req.Service),
		Date:       req.Date,
		Time:       req.Time,
		Status:     string(domain.InitialStatus()),
	}

	if err := h.db.Create(&ap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_appointment"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var aps []models.Appointment
	h.db.
		Where("date = ?", dateStr).
		Order("time ASC").
		Find(&aps)

	c.JSON(200, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	prefix := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")

	var appointments []models.Appointment
	h.db.
		Where("date LIKE ?", prefix+"%").
		Order("date ASC, time ASC").
		Find(&appointments)

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// ADVANCE STATUS (confirmed → arrived → attended)
// ======================================================

func (h *AppointmentHandler) AdvanceStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.advanceUC.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
		middleware.CurrentUserID(c),
	)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Business(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// FINALIZE (atendido + lançamento da receita)
// ======================================================

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req FinalizeAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx, err := h.finalizeUC.Execute(c.Request.Context(), ucAppointment.FinalizeInput{
		AppointmentID: uint(id),
		PaymentMethod: req.PaymentMethod,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		UserID:        middleware.CurrentUserID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_appointment"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(200, gin.H{"deleted": true})
}
