package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lsandini/OnCall/pkg/database"
)

type workerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Role           string  `json:"role" binding:"required,oneof=senior_specialist resident student"`
	Type           string  `json:"type" binding:"required,oneof=permanent external"`
	CanDoubleShift bool    `json:"can_double_shift"`
	YearOfStudy    *int    `json:"year_of_study"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Active         *bool   `json:"active"`
}

// ListWorkers returns the full roster, active and inactive
func (h *Handler) ListWorkers(c *gin.Context) {
	var workers []database.Worker
	if err := h.DB.Order("name").Find(&workers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch workers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// CreateWorker adds a worker to the roster
func (h *Handler) CreateWorker(c *gin.Context) {
	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	worker := database.Worker{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Role:           req.Role,
		Type:           req.Type,
		CanDoubleShift: req.CanDoubleShift,
		YearOfStudy:    req.YearOfStudy,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Active:         active,
	}

	if err := h.DB.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create worker"})
		return
	}

	h.Log.Info("worker created", zap.String("id", worker.ID), zap.String("role", worker.Role))
	c.JSON(http.StatusCreated, worker)
}

// UpdateWorker replaces a worker's editable fields
func (h *Handler) UpdateWorker(c *gin.Context) {
	id := c.Param("id")

	var worker database.Worker
	if err := h.DB.First(&worker, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker.Name = req.Name
	worker.Role = req.Role
	worker.Type = req.Type
	worker.CanDoubleShift = req.CanDoubleShift
	worker.YearOfStudy = req.YearOfStudy
	worker.StartDate = req.StartDate
	worker.EndDate = req.EndDate
	if req.Active != nil {
		worker.Active = *req.Active
	}

	if err := h.DB.Save(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update worker"})
		return
	}
	c.JSON(http.StatusOK, worker)
}

// DeleteWorker removes a worker and their availability entries. Generated
// schedules keep their assignment rows; gap-filling prunes them on the
// next repair run.
func (h *Handler) DeleteWorker(c *gin.Context) {
	id := c.Param("id")

	if err := h.DB.Delete(&database.Worker{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete worker"})
		return
	}
	h.DB.Delete(&database.AvailabilityEntry{}, "worker_id = ?", id)

	c.Status(http.StatusNoContent)
}
