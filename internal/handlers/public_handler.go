package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
	"github.com/sellbarbers/booking-api/internal/timezone"
	"github.com/sellbarbers/booking-api/internal/usecase/availability"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db            *gorm.DB
	availDatesUC  *availability.GetAvailableDates
	availSlotsUC  *availability.GetAvailableTimeSlots
	createBooking *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availDatesUC *availability.GetAvailableDates,
	availSlotsUC *availability.GetAvailableTimeSlots,
	createBooking *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		availDatesUC:  availDatesUC,
		availSlotsUC:  availSlotsUC,
		createBooking: createBooking,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateBookingRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Service  string `json:"service"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:mm
	Notes    string `json:"notes"`
}

// ======================================================
// BARBERS
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Errore nel caricare i barbieri.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) AvailableDates(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	dates, err := h.availDatesUC.Execute(
		c.Request.Context(),
		uint(barberID),
		availability.DefaultHorizonDays,
		timezone.Now(),
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Errore nel calcolare le date disponibili.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"dates":     dates,
	})
}

func (h *PublicHandler) AvailableTimeSlots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obbligatoria.")
		return
	}

	slots, err := h.availSlotsUC.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDate) {
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Data non valida.")
			return
		}
		httperr.Internal(c, "availability_failed", "Errore nel calcolare gli orari.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
	})
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarberID: req.BarberID,
			Name:     req.Name,
			Surname:  req.Surname,
			Phone:    req.Phone,
			Email:    req.Email,
			Service:  req.Service,
			Date:     req.Date,
			Time:     req.Time,
			Notes:    req.Notes,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference": b.Reference,
		"barber_id": b.BarberID,
		"date":      b.Date,
		"time":      b.Time,
		"status":    b.Status,
	})
}

func mapBookingErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, httperr.CodeSlotTaken, "Questo orario è appena stato prenotato. Scegline un altro.")
	case httperr.CodeValidationFailed:
		httperr.BadRequest(c, httperr.CodeValidationFailed, "Dati non validi.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Errore nella creazione della prenotazione.")
	}
}

// ======================================================
// SERVICES (PRICING PAGE)
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("category ASC, id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Errore nel caricare i servizi.")
		return
	}

	grouped := map[string][]models.Service{}
	order := []string{}
	for _, s := range services {
		cat := strings.ToLower(s.Category)
		if _, ok := grouped[cat]; !ok {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], s)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": order,
		"services":   grouped,
	})
}

// ======================================================
// GENERAL INFO
// ======================================================

func (h *PublicHandler) GetGeneralInfo(c *gin.Context) {
	var info models.GeneralInfo
	if err := h.db.First(&info).Error; err != nil {
		httperr.NotFound(c, "general_info_not_found", "Informazioni non disponibili.")
		return
	}

	c.JSON(http.StatusOK, info)
}
