package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/audit"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/middleware"
	"github.com/sellbarbers/booking-api/internal/models"
	ucBooking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type WorkingHoursHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	toggleUC *ucBooking.ToggleClosedSlot
}

func NewWorkingHoursHandler(
	db *gorm.DB,
	auditDisp *audit.Dispatcher,
	toggleUC *ucBooking.ToggleClosedSlot,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		db:       db,
		audit:    auditDisp,
		toggleUC: toggleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingDayConfig struct {
	Day       string `json:"day" binding:"required"` // Mon..Sun
	Available bool   `json:"available"`
	StartTime string `json:"start"`
	EndTime   string `json:"end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type ToggleClosedSlotRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// GET
// ======================================================

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Errore nel caricare gli orari.")
		return
	}

	// Always hand back the full week in Mon..Sun order; a day with no
	// row is off.
	byDay := make(map[string]models.WorkingHours, len(hours))
	for _, wh := range hours {
		byDay[wh.Day] = wh
	}

	week := make([]models.WorkingHours, 0, 7)
	for _, d := range schedule.Week() {
		if wh, ok := byDay[d.String()]; ok {
			week = append(week, wh)
			continue
		}
		week = append(week, models.WorkingHours{
			BarberID: uint(barberID),
			Day:      d.String(),
		})
	}

	c.JSON(http.StatusOK, week)
}

// ======================================================
// UPDATE
// ======================================================

// Update replaces the weekly schedule. Closed slots survive the
// rewrite as long as they still sit on the day's new grid; a closure
// outside the new window is dropped.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		// The current rows are read inside the transaction so a failed
		// read aborts the rewrite instead of wiping the closed slots.
		var existing []models.WorkingHours
		if err := tx.
			Where("barber_id = ?", barberID).
			Find(&existing).Error; err != nil {
			return err
		}

		toCreate, err := buildRows(uint(barberID), req.Days, existing)
		if err != nil {
			return err
		}

		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidationFailed) {
			httperr.BadRequest(c, "invalid_working_hours", "Orari non validi.")
			return
		}
		httperr.Internal(c, "failed_to_save_working_hours", "Errore nel salvare gli orari.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionHoursUpdated,
		Entity:   "working_hours",
		Metadata: map[string]any{"barber_id": barberID},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func buildRows(
	barberID uint,
	days []WorkingDayConfig,
	existing []models.WorkingHours,
) ([]models.WorkingHours, error) {

	closedByDay := make(map[string][]string, len(existing))
	for _, wh := range existing {
		closedByDay[wh.Day] = wh.ClosedSlots
	}

	seen := make(map[string]bool, len(days))
	var rows []models.WorkingHours

	for _, d := range days {
		day, err := schedule.ParseDay(d.Day)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
		}
		if seen[day.String()] {
			return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
		}
		seen[day.String()] = true

		row := models.WorkingHours{
			BarberID:  barberID,
			Day:       day.String(),
			Available: d.Available,
		}

		if d.Available {
			start, err := schedule.ParseTimeOfDay(d.StartTime)
			if err != nil {
				return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
			}
			end, err := schedule.ParseTimeOfDay(d.EndTime)
			if err != nil {
				return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
			}
			if start.After(end) {
				return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
			}

			row.StartTime = start.String()
			row.EndTime = end.String()
			row.ClosedSlots = datatypes.NewJSONSlice(
				keepOnGrid(closedByDay[day.String()], start, end),
			)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func keepOnGrid(closed []string, start, end schedule.TimeOfDay) []string {
	grid := make(map[string]bool)
	for _, s := range schedule.GenerateSlots(start, end, schedule.DefaultSlotMinutes) {
		grid[s.String()] = true
	}

	kept := []string{}
	for _, s := range closed {
		if grid[s] {
			kept = append(kept, s)
		}
	}
	return kept
}

// ======================================================
// TOGGLE CLOSED SLOT
// ======================================================

func (h *WorkingHoursHandler) ToggleClosedSlot(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	var req ToggleClosedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	res, err := h.toggleUC.Execute(
		c.Request.Context(),
		&userID,
		uint(barberID),
		req.Day,
		req.Time,
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeValidationFailed:
			httperr.BadRequest(c, httperr.CodeValidationFailed, "Orario non valido per questo giorno.")
		case httperr.CodeNotFound:
			httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
		default:
			httperr.Internal(c, "failed_to_toggle_slot", "Errore nell'aggiornare lo slot.")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
