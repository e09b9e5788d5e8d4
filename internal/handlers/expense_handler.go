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

type ExpenseHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewExpenseHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	bus *events.Bus,
) *ExpenseHandler {
	return &ExpenseHandler{
		db:    db,
		audit: auditDispatcher,
		bus:   bus,
	}
}

// --------- Requests ---------

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Value       decimal.Decimal `json:"value"`
	Date        string          `json:"date"`
}

type UpdateExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

type CreateExpenseCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// ======================================================
// EXPENSES
// ======================================================

func (h *ExpenseHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	category := strings.TrimSpace(c.Query("category"))

	q := h.db.Model(&models.Expense{})

	if fromStr != "" {
		q = q.Where("date >= ?", fromStr)
	}
	if toStr != "" {
		q = q.Where("date <= ?", toStr)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := q.
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.Value.IsPositive() {
		httperr.BadRequest(c, "invalid_value", "Valor deve ser positivo.")
		return
	}

	date := req.Date
	if date == "" {
		date = timezone.Today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	expense := models.Expense{
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Value:       req.Value,
		Date:        date,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_expense"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "expense_created",
		Entity:   "expense",
		EntityID: &expense.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: expense.ID})

	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, uint(id)).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	if req.Description != nil {
		expense.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		expense.Category = strings.TrimSpace(*req.Category)
	}
	if req.Value != nil {
		if !req.Value.IsPositive() {
			httperr.BadRequest(c, "invalid_value", "Valor deve ser positivo.")
			return
		}
		expense.Value = *req.Value
	}
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		expense.Date = *req.Date
	}

	if err := h.db.Save(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_expense"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "expense_updated",
		Entity:   "expense",
		EntityID: &expense.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: expense.ID})

	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, uint(id)).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	if err := h.db.Delete(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_expense"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "expense_deleted",
		Entity:   "expense",
		EntityID: &expense.ID,
	})
	h.bus.Publish(events.Event{Topic: events.TopicLedgerChanged, EntityID: expense.ID})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// CATEGORIES (rótulo + cor; vínculo por texto livre)
// ======================================================

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := h.db.
		Order("name ASC").
		Find(&categories).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.ExpenseCategory{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "category_already_exists", "Categoria já existe.")
		return
	}

	category := models.ExpenseCategory{
		Name:  name,
		Color: strings.TrimSpace(req.Color),
	}

	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var category models.ExpenseCategory
	if err := h.db.First(&category, uint(id)).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	// Despesas antigas seguem com o texto da categoria.
	if err := h.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
