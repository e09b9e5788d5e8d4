package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/export"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	ucCreditSale "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/creditsale"
)

// ======================================================
// HANDLER
// ======================================================

type CreditSaleHandler struct {
	db        *gorm.DB
	createUC  *ucCreditSale.CreateSale
	payUC     *ucCreditSale.PayInstallment
	refreshUC *ucCreditSale.RefreshOverdue
	audit     *audit.Dispatcher
	bus       *events.Bus
}

func NewCreditSaleHandler(
	db *gorm.DB,
	createUC *ucCreditSale.CreateSale,
	payUC *ucCreditSale.PayInstallment,
	refreshUC *ucCreditSale.RefreshOverdue,
	auditDispatcher *audit.Dispatcher,
	bus *events.Bus,
) *CreditSaleHandler {
	return &CreditSaleHandler{
		db:        db,
		createUC:  createUC,
		payUC:     payUC,
		refreshUC: refreshUC,
		audit:     auditDispatcher,
		bus:       bus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCreditSaleRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	ClientID   *uint  `json:"client_id"`
	Products   string `json:"products"`

	TotalAmount decimal.Decimal `json:"total_amount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`

	NumberOfInstallments int    `json:"number_of_installments" binding:"required,min=1"`
	FirstDueDate         string `json:"first_due_date" binding:"required"`
	Date                 string `json:"date"`
}

type PayInstallmentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaidDate      string `json:"paid_date"`
}

// ======================================================
// LIST
// ======================================================

func (h *CreditSaleHandler) List(c *gin.Context) {
	status := c.Query("status")

	q := h.db.Model(&models.CreditSale{}).Preload("Installments")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var sales []models.CreditSale
	if err := q.
		Order("createdat DESC").
		Find(&sales).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_credit_sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// ======================================================
// GET
// ======================================================

func (h *CreditSaleHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var sale models.CreditSale
	if err := h.db.Preload("Installments").First(&sale, id).Error; err != nil {
		httperr.NotFound(c, "credit_sale_not_found", "Crediário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// ======================================================
// CREATE (venda + cronograma de parcelas)
// ======================================================

func (h *CreditSaleHandler) Create(c *gin.Context) {
	var settings models.SystemSettings
	if err := h.db.First(&settings, models.SystemSettingsRowID).Error; err == nil &&
		!settings.CreditEnabled {
		httperr.BadRequest(c, "credit_disabled", "Crediário desabilitado nas configurações.")
		return
	}

	var req CreateCreditSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sale, err := h.createUC.Execute(c.Request.Context(), ucCreditSale.CreateSaleInput{
		ClientName:           req.ClientName,
		ClientID:             req.ClientID,
		Products:             req.Products,
		TotalAmount:          req.TotalAmount,
		Subtotal:             req.Subtotal,
		Discount:             req.Discount,
		NumberOfInstallments: req.NumberOfInstallments,
		FirstDueDate:         req.FirstDueDate,
		Date:                 req.Date,
		UserID:               middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// ======================================================
// PAY INSTALLMENT
// ======================================================

func (h *CreditSaleHandler) PayInstallment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("installmentId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	installment, err := h.payUC.Execute(c.Request.Context(), ucCreditSale.PayInstallmentInput{
		InstallmentID: uint(id),
		PaymentMethod: req.PaymentMethod,
		PaidDate:      req.PaidDate,
		UserID:        middleware.CurrentUserID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "installment_not_found") {
			httperr.NotFound(c, "installment_not_found", "Parcela não encontrada.")
			return
		}
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusOK, installment)
}

// ======================================================
// REFRESH OVERDUE (reconciliação sob demanda)
// ======================================================

func (h *CreditSaleHandler) RefreshOverdue(c *gin.Context) {
	result, err := h.refreshUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_refresh_overdue"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// RECEIPT (PDF da parcela paga)
// ======================================================

func (h *CreditSaleHandler) InstallmentReceipt(c *gin.Context) {
	id := c.Param("installmentId")

	var installment models.Installment
	if err := h.db.First(&installment, id).Error; err != nil {
		httperr.NotFound(c, "installment_not_found", "Parcela não encontrada.")
		return
	}

	var sale models.CreditSale
	if err := h.db.First(&sale, installment.CreditSaleID).Error; err != nil {
		httperr.NotFound(c, "credit_sale_not_found", "Crediário não encontrado.")
		return
	}

	filename := fmt.Sprintf("recibo-parcela-%d-%d.pdf", sale.ID, installment.InstallmentNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")

	if err := export.ReceiptPDF(c.Writer, &sale, &installment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_render_receipt"})
		return
	}
}

// ======================================================
// DELETE (apaga a venda e as parcelas juntas)
// ======================================================

func (h *CreditSaleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var sale models.CreditSale
	if err := h.db.First(&sale, uint(id)).Error; err != nil {
		httperr.NotFound(c, "credit_sale_not_found", "Crediário não encontrado.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("creditsaleid = ?", sale.ID).
			Delete(&models.Installment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_credit_sale"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "credit_sale_deleted",
		Entity:   "credit_sale",
		EntityID: &sale.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: sale.ID})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
