package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/middleware"
	"github.com/sellbarbers/booking-api/internal/models"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

type BarberHandler struct {
	db       *gorm.DB
	removeUC *ucBooking.RemoveBarber
}

func NewBarberHandler(db *gorm.DB, removeUC *ucBooking.RemoveBarber) *BarberHandler {
	return &BarberHandler{db: db, removeUC: removeUC}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateBarberRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")

	if active := strings.TrimSpace(c.Query("active")); active == "true" {
		q = q.Where("active = ?", true)
	} else if active == "false" {
		q = q.Where("active = ?", false)
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Errore nel caricare i barbieri.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	barber := models.Barber{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Active:      true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Errore nella creazione del barbiere.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("barberId")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Errore nel caricare il barbiere.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.Name != nil {
		barber.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		barber.Description = *req.Description
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Errore nell'aggiornare il barbiere.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), &userID, uint(barberID)); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
			return
		}
		httperr.Internal(c, "failed_to_delete_barber", "Errore nell'eliminare il barbiere.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
