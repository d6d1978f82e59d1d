// File: handlers/session.go
package handlers

import (
	"net/http"
	"time"

	"consulta/models"
	"consulta/services/session"
	"consulta/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves session CRUD and session notes.
type SessionHandler struct {
	Service session.SessionService
}

func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

func (h *SessionHandler) List(c *gin.Context) {
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
	sessions, err := h.Service.ListByRange(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *SessionHandler) Create(c *gin.Context) {
	var sess models.Session
	if err := c.ShouldBindJSON(&sess); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid session", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), sess)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

type rescheduleRequest struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
}

func (h *SessionHandler) Reschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reschedule request", err.Error())
		return
	}
	if err := h.Service.Reschedule(c.Request.Context(), c.Param("id"), req.From, req.To); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to reschedule session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rescheduled"})
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *SessionHandler) Complete(c *gin.Context) {
	if err := h.Service.Complete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to complete session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (h *SessionHandler) AddNote(c *gin.Context) {
	var note models.SessionNote
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid note", err.Error())
		return
	}
	note.SessionID = c.Param("id")
	if err := h.Service.AddNote(c.Request.Context(), note); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add note", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *SessionHandler) ListNotes(c *gin.Context) {
	notes, err := h.Service.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notes", err.Error())
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *SessionHandler) DeleteNote(c *gin.Context) {
	if err := h.Service.DeleteNote(c.Request.Context(), c.Param("noteId")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete note", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
