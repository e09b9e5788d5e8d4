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
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

type TransactionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewTransactionHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	bus *events.Bus,
) *TransactionHandler {
	return &TransactionHandler{
		db:    db,
		audit: auditDispatcher,
		bus:   bus,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	ClientName    string          `json:"client_name"`
	ClientID      *uint           `json:"client_id"`
	Service       string          `json:"service" binding:"required"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Type          string          `json:"type"`
}

type UpdateTransactionRequest struct {
	ClientName    *string          `json:"client_name,omitempty"`
	Service       *string          `json:"service,omitempty"`
	Date          *string          `json:"date,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Subtotal      *decimal.Decimal `json:"subtotal,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	Type          *string          `json:"type,omitempty"`
}

// ======================================================
// LIST (filtros opcionais por período, tipo e texto)
// ======================================================

func (h *TransactionHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	txType := strings.ToLower(strings.TrimSpace(c.Query("type")))
	method := strings.ToLower(strings.TrimSpace(c.Query("payment_method")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Transaction{})

	if fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
		q = q.Where("date >= ?", fromStr)
	}

	if toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		q = q.Where("date <= ?", toStr)
	}

	if txType != "" {
		q = q.Where("type = ?", txType)
	}

	if method != "" {
		q = q.Where("LOWER(paymentmethod) = ?", method)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(clientname) LIKE ? OR LOWER(service) LIKE ?", like, like)
	}

	var transactions []models.Transaction
	if err := q.
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ======================================================
// CREATE (lançamento manual)
// ======================================================

func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.Subtotal.IsPositive() {
		httperr.BadRequest(c, "invalid_subtotal", "Subtotal deve ser positivo.")
		return
	}

	date := req.Date
	if date == "" {
		date = timezone.Today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	txType := strings.ToLower(strings.TrimSpace(req.Type))
	if txType == "" {
		txType = models.TransactionTypeService
	}
	if txType != models.TransactionTypeService && txType != models.TransactionTypeProduct {
		httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
		return
	}

	manual := false
	tx := models.Transaction{
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientID:        req.ClientID,
		Service:         strings.TrimSpace(req.Service),
		Date:            date,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		Value:           req.Subtotal.Sub(req.Discount),
		Type:            txType,
		FromAppointment: &manual,
	}

	if err := h.db.Create(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_transaction"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "transaction_created",
		Entity:   "transaction",
		EntityID: &tx.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: tx.ID})

	c.JSON(http.StatusCreated, tx)
}

// ======================================================
// UPDATE
// ======================================================

func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var tx models.Transaction
	if err := h.db.First(&tx, uint(id)).Error; err != nil {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	if req.ClientName != nil {
		tx.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.Service != nil {
		tx.Service = strings.TrimSpace(*req.Service)
	}
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		tx.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		tx.PaymentMethod = *req.PaymentMethod
	}
	if req.Subtotal != nil {
		if !req.Subtotal.IsPositive() {
			httperr.BadRequest(c, "invalid_subtotal", "Subtotal deve ser positivo.")
			return
		}
		tx.Subtotal = *req.Subtotal
	}
	if req.Discount != nil {
		tx.Discount = *req.Discount
	}
	if req.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*req.Type))
		if t != models.TransactionTypeService && t != models.TransactionTypeProduct {
			httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
			return
		}
		tx.Type = t
	}

	tx.Value = tx.Subtotal.Sub(tx.Discount)

	if err := h.db.Save(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_transaction"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "transaction_updated",
		Entity:   "transaction",
		EntityID: &tx.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: tx.ID})

	c.JSON(http.StatusOK, tx)
}

// ======================================================
// DELETE
// ======================================================

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var tx models.Transaction
	if err := h.db.First(&tx, uint(id)).Error; err != nil {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	if err := h.db.Delete(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_transaction"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: &tx.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: tx.ID})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
