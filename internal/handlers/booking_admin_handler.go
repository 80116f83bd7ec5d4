package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/httpresp"
	"github.com/sellbarbers/booking-api/internal/middleware"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingAdminHandler struct {
	listUC      *ucBooking.ListBookings
	setStatusUC *ucBooking.SetBookingStatus
}

func NewBookingAdminHandler(
	listUC *ucBooking.ListBookings,
	setStatusUC *ucBooking.SetBookingStatus,
) *BookingAdminHandler {
	return &BookingAdminHandler{
		listUC:      listUC,
		setStatusUC: setStatusUC,
	}
}

// ======================================================
// LIST + STATS
// ======================================================

func (h *BookingAdminHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
			return
		}
		filter.BarberID = uint(id)
	}

	filter.Date = c.Query("date")

	if v := c.Query("status"); v != "" {
		st, err := domain.ParseStatus(v)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Stato non valido.")
			return
		}
		filter.Status = string(st)
	}

	bookings, stats, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Errore nel caricare le prenotazioni.")
		return
	}

	httpresp.ListWith(c, bookings, gin.H{"stats": stats})
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *BookingAdminHandler) Confirm(c *gin.Context) {
	h.setStatus(c, domain.StatusConfirmed)
}

func (h *BookingAdminHandler) Cancel(c *gin.Context) {
	h.setStatus(c, domain.StatusCancelled)
}

func (h *BookingAdminHandler) setStatus(c *gin.Context, target domain.Status) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Prenotazione non valida.")
		return
	}

	b, err := h.setStatusUC.Execute(c.Request.Context(), &userID, uint(id), target)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeInvalidState:
			httperr.BadRequest(c, httperr.CodeInvalidState, "La prenotazione non è più in attesa.")
		case httperr.CodeNotFound:
			httperr.NotFound(c, "booking_not_found", "Prenotazione non trovata.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Errore nell'aggiornare la prenotazione.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
