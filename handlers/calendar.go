// File: handlers/calendar.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"consulta/services/patient"
	"consulta/services/payment"
	"consulta/services/schedule"
	"consulta/services/session"
	"consulta/services/settings"
	"consulta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the calendar view: the projected event set and
// the two mediated gestures (slot selection and event move).
type CalendarHandler struct {
	Sessions session.SessionService
	Settings settings.SettingsService
	Patients patient.PatientService
	Payments payment.PaymentService
	Mediator *schedule.Mediator
}

func NewCalendarHandler(
	sessions session.SessionService,
	settingsSvc settings.SettingsService,
	patients patient.PatientService,
	payments payment.PaymentService,
	mediator *schedule.Mediator,
) *CalendarHandler {
	return &CalendarHandler{
		Sessions: sessions,
		Settings: settingsSvc,
		Patients: patients,
		Payments: payments,
		Mediator: mediator,
	}
}

// GetEvents recomputes the projection for the requested range from the
// current sessions and settings inputs.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from parameter", err.Error())
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to parameter", err.Error())
		return
	}

	sessions, err := h.Sessions.ListByRange(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load sessions", err.Error())
		return
	}
	snap := h.Settings.GetSnapshot(c.Request.Context())

	// Capability snapshots; failures degrade to the projector's defaults.
	names, err := h.Patients.NameIndex(c.Request.Context())
	if err != nil {
		names = nil
	}
	settled, err := h.Payments.SettledIndex(c.Request.Context(), sessions)
	if err != nil {
		settled = nil
	}

	projector := schedule.NewProjector(names, settled)
	events := projector.Project(sessions, snap.DayOffs)

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"workingHours": snap.WorkingHours,
	})
}

type selectSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// SelectSlot runs a slot-selection gesture through the mediator.
func (h *CalendarHandler) SelectSlot(c *gin.Context) {
	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot selection", err.Error())
		return
	}

	snap := h.Settings.GetSnapshot(c.Request.Context())
	err := h.Mediator.SelectSlot(c.Request.Context(), req.Start, req.End, snap.WorkingHours, snap.DayOffs)

	var rejection *schedule.RejectionError
	switch {
	case errors.As(err, &rejection):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"accepted": false,
			"kind":     rejection.Kind,
			"reason":   rejection.Reason,
		})
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", err.Error())
	default:
		c.JSON(http.StatusCreated, gin.H{"accepted": true})
	}
}

type moveSessionRequest struct {
	SessionID string    `json:"sessionId" binding:"required"`
	NewStart  time.Time `json:"newStart" binding:"required"`
	NewEnd    time.Time `json:"newEnd"`
}

// MoveSession runs a drag/drop gesture through the mediator. The response
// tells the calendar surface whether to revert the visual move.
func (h *CalendarHandler) MoveSession(c *gin.Context) {
	var req moveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid move request", err.Error())
		return
	}

	snap := h.Settings.GetSnapshot(c.Request.Context())
	reverted := false
	err := h.Mediator.MoveSession(c.Request.Context(), req.SessionID, req.NewStart, req.NewEnd,
		snap.WorkingHours, snap.DayOffs, func() { reverted = true })

	var rejection *schedule.RejectionError
	switch {
	case errors.Is(err, schedule.ErrUnresolvedDrop):
		c.JSON(http.StatusBadRequest, gin.H{
			"accepted": false,
			"reverted": reverted,
			"reason":   "move had no resolved end time",
		})
	case errors.As(err, &rejection):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"accepted": false,
			"reverted": reverted,
			"kind":     rejection.Kind,
			"reason":   rejection.Reason,
		})
	case err != nil:
		utils.GetLogger().Warn("calendar: move forwarding failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"accepted": false,
			"reverted": reverted,
			"reason":   "could not move the session, please try again",
		})
	default:
		c.JSON(http.StatusOK, gin.H{"accepted": true, "reverted": false})
	}
}
