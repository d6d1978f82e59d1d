// File: handlers/patient.go
package handlers

import (
	"net/http"

	"consulta/models"
	"consulta/services/patient"
	"consulta/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler serves patient record CRUD.
type PatientHandler struct {
	Service patient.PatientService
}

func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) List(c *gin.Context) {
	includeArchived := c.Query("archived") == "true"
	patients, err := h.Service.List(c.Request.Context(), includeArchived)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list patients", err.Error())
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "patient not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid patient", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create patient", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid patient", err.Error())
		return
	}
	p.ID = c.Param("id")
	if err := h.Service.Update(c.Request.Context(), p); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *PatientHandler) Archive(c *gin.Context) {
	if err := h.Service.Archive(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to archive patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
