package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/httpresp"
	"github.com/sellbarbers/booking-api/internal/notify"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
	"github.com/sellbarbers/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	rosterUC *ucBooking.ClientRoster
	notifier *notify.Notifier
}

func NewClientHandler(
	rosterUC *ucBooking.ClientRoster,
	notifier *notify.Notifier,
) *ClientHandler {
	return &ClientHandler{
		rosterUC: rosterUC,
		notifier: notifier,
	}
}

// ======================================================
// LIST CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.rosterUC.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Errore nel caricare i clienti.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// SEND MESSAGE
// ======================================================

type SendMessageRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Body  string `json:"body" binding:"required"`
}

// SendMessage queues an outbound message to one client. Phone wins
// when both contacts are present.
func (h *ClientHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	switch {
	case req.Phone != "" && validators.IsPhoneValid(req.Phone):
		h.notifier.Send(notify.Message{
			Kind: notify.KindSMS,
			To:   req.Phone,
			Body: req.Body,
		})
	case req.Email != "":
		h.notifier.Send(notify.Message{
			Kind: notify.KindEmail,
			To:   req.Email,
			Body: req.Body,
		})
	default:
		httperr.BadRequest(c, "missing_contact", "Serve un telefono o un'email validi.")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
