// File: handlers/settings.go
package handlers

import (
	"net/http"

	"consulta/models"
	"consulta/services/settings"
	"consulta/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves working hours and day-off configuration.
type SettingsHandler struct {
	Service settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

// GetSchedule returns the current snapshot: working hours plus expanded
// day-off records.
func (h *SettingsHandler) GetSchedule(c *gin.Context) {
	snap := h.Service.GetSnapshot(c.Request.Context())
	c.JSON(http.StatusOK, snap)
}

func (h *SettingsHandler) SaveWorkingHours(c *gin.Context) {
	var wh models.WorkingHours
	if err := c.ShouldBindJSON(&wh); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid working hours", err.Error())
		return
	}
	if err := h.Service.SaveWorkingHours(c.Request.Context(), wh); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to save working hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *SettingsHandler) ListDayOffs(c *gin.Context) {
	dayOffs, err := h.Service.ListDayOffSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list day-offs", err.Error())
		return
	}
	c.JSON(http.StatusOK, dayOffs)
}

func (h *SettingsHandler) CreateDayOff(c *gin.Context) {
	var dayOff models.DayOffSetting
	if err := c.ShouldBindJSON(&dayOff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day-off", err.Error())
		return
	}
	if err := h.Service.CreateDayOff(c.Request.Context(), dayOff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create day-off", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *SettingsHandler) UpdateDayOff(c *gin.Context) {
	var dayOff models.DayOffSetting
	if err := c.ShouldBindJSON(&dayOff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day-off", err.Error())
		return
	}
	if err := h.Service.UpdateDayOff(c.Request.Context(), c.Param("id"), dayOff); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update day-off", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *SettingsHandler) DeleteDayOff(c *gin.Context) {
	if err := h.Service.DeleteDayOff(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete day-off", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
