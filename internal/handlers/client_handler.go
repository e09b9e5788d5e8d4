package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	ucClient "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/client"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/validators"
)

type ClientHandler struct {
	db       *gorm.DB
	updateUC *ucClient.UpdateClient
	audit    *audit.Dispatcher
}

func NewClientHandler(
	db *gorm.DB,
	updateUC *ucClient.UpdateClient,
	auditDispatcher *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		db:       db,
		updateUC: updateUC,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Whatsapp    string `json:"whatsapp" binding:"required"`
	Nickname    string `json:"nickname"`
	CPF         string `json:"cpf"`
	Observation string `json:"observation"`
}

type UpdateClientRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Whatsapp    *string `json:"whatsapp,omitempty"`
	Nickname    *string `json:"nickname,omitempty"`
	CPF         *string `json:"cpf,omitempty"`
	Observation *string `json:"observation,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(fullname) LIKE ? OR whatsapp LIKE ? OR LOWER(nickname) LIKE ? OR cpf LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("createdat DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone, err := validators.NormalizePhone(req.Whatsapp)
	if err != nil {
		httperr.BadRequest(c, "invalid_phone", "WhatsApp inválido.")
		return
	}

	cpf, err := validators.NormalizeCPF(req.CPF)
	if err != nil {
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
		return
	}

	client := models.Client{
		FullName:    strings.TrimSpace(req.FullName),
		Whatsapp:    phone,
		Nickname:    strings.TrimSpace(req.Nickname),
		CPF:         cpf,
		Observation: strings.TrimSpace(req.Observation),
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE (propaga o nome para os registros ligados)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.updateUC.Execute(c.Request.Context(), ucClient.UpdateClientInput{
		ClientID:    uint(id),
		FullName:    req.FullName,
		Whatsapp:    req.Whatsapp,
		Nickname:    req.Nickname,
		CPF:         req.CPF,
		Observation: req.Observation,
		UserID:      middleware.CurrentUserID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (sem cascata: o histórico guarda o nome)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
