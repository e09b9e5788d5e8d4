package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Requests ---------

type CreateCatalogItemRequest struct {
	Name  string          `json:"name" binding:"required"`
	Type  string          `json:"type" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

type UpdateCatalogItemRequest struct {
	Name   *string          `json:"name,omitempty"`
	Type   *string          `json:"type,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CatalogHandler) List(c *gin.Context) {
	itemType := strings.ToLower(strings.TrimSpace(c.Query("type")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.CatalogItem{})

	if itemType != "" {
		q = q.Where("type = ?", itemType)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	var items []models.CatalogItem
	if err := q.
		Order("id ASC").
		Find(&items).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_catalog"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	itemType := strings.ToLower(strings.TrimSpace(req.Type))
	if itemType != models.TransactionTypeService && itemType != models.TransactionTypeProduct {
		httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
		return
	}

	item := models.CatalogItem{
		Name:   strings.TrimSpace(req.Name),
		Type:   itemType,
		Price:  req.Price,
		Active: true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_catalog_item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var item models.CatalogItem
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "catalog_item_not_found", "Item não encontrado.")
		return
	}

	var req UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*req.Type))
		if t != models.TransactionTypeService && t != models.TransactionTypeProduct {
			httperr.BadRequest(c, "invalid_type", "Tipo inválido.")
			return
		}
		item.Type = t
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_catalog_item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
