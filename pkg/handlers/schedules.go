package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/models"
	"github.com/lsandini/OnCall/pkg/scheduler"
)

type monthRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// ListSchedules returns all generated schedules
func (h *Handler) ListSchedules(c *gin.Context) {
	var rows []database.MonthlySchedule
	if err := h.DB.Order("year, month").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": rows})
}

// GetSchedule returns the schedule for one month
func (h *Handler) GetSchedule(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	var row database.MonthlySchedule
	if err := h.DB.First(&row, "year = ? AND month = ?", year, month).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// GenerateSchedule computes a month's schedule from scratch and replaces
// any previously stored schedule for that month wholesale
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req monthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine, err := h.buildScheduler(req.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var rows []database.MonthlySchedule
	if err := h.DB.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}

	result := engine.Generate(req.Year, req.Month, database.SchedulesToModels(rows))

	if err := h.storeSchedule(result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store schedule"})
		return
	}

	h.Log.Info("schedule generated",
		zap.Int("year", req.Year), zap.Int("month", req.Month),
		zap.Int("assignments", len(result.Assignments)))
	c.JSON(http.StatusOK, result)
}

// FillScheduleGaps repairs an existing month's schedule: stale assignments
// are dropped, still-valid ones are kept untouched, and only the resulting
// vacancies are re-filled
func (h *Handler) FillScheduleGaps(c *gin.Context) {
	var req monthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row database.MonthlySchedule
	if err := h.DB.First(&row, "year = ? AND month = ?", req.Year, req.Month).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	engine, err := h.buildScheduler(req.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prevYear, prevMonth := req.Year, req.Month-1
	if prevMonth < 1 {
		prevYear, prevMonth = req.Year-1, 12
	}
	var previous database.MonthlySchedule
	var previousAssignments []models.ShiftAssignment
	if err := h.DB.First(&previous, "year = ? AND month = ?", prevYear, prevMonth).Error; err == nil {
		previousAssignments = previous.Assignments
	}

	result := engine.FillGaps(req.Year, req.Month, row.Assignments, previousAssignments)

	if err := h.storeSchedule(result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store schedule"})
		return
	}

	h.Log.Info("schedule gaps filled",
		zap.Int("year", req.Year), zap.Int("month", req.Month),
		zap.Int("assignments", len(result.Assignments)))
	c.JSON(http.StatusOK, result)
}

// UpdateAssignment changes the worker of a single assignment (manual edit)
func (h *Handler) UpdateAssignment(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	assignmentID := c.Param("assignmentId")

	var req struct {
		WorkerID string `json:"worker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row database.MonthlySchedule
	if err := h.DB.First(&row, "year = ? AND month = ?", year, month).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	found := false
	for i := range row.Assignments {
		if row.Assignments[i].ID == assignmentID {
			row.Assignments[i].WorkerID = req.WorkerID
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	if err := h.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update assignment"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeleteSchedule removes a month's schedule
func (h *Handler) DeleteSchedule(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(&database.MonthlySchedule{}, "year = ? AND month = ?", year, month).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete schedule"})
		return
	}
	c.Status(http.StatusNoContent)
}

// buildScheduler assembles the engine from the stored roster, availability,
// active configuration and the year's holidays. A missing configuration is
// not an error; the engine then produces an empty schedule.
func (h *Handler) buildScheduler(year int) (*scheduler.Scheduler, error) {
	var workers []database.Worker
	if err := h.DB.Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("could not fetch workers: %w", err)
	}

	var availability []database.AvailabilityEntry
	if err := h.DB.Find(&availability).Error; err != nil {
		return nil, fmt.Errorf("could not fetch availability: %w", err)
	}

	var config *models.ShiftConfiguration
	var configRow database.ShiftConfiguration
	if err := h.DB.First(&configRow, "is_active = ?", true).Error; err == nil {
		m := configRow.ToModel()
		config = &m
	}

	var holidayRows []database.Holiday
	if err := h.DB.Where("date LIKE ?", fmt.Sprintf("%04d-%%", year)).
		Find(&holidayRows).Error; err != nil {
		return nil, fmt.Errorf("could not fetch holidays: %w", err)
	}

	opts := []scheduler.Option{}
	if os.Getenv("TIE_BREAK") == "lexical" {
		opts = append(opts, scheduler.WithTieBreak(scheduler.TieBreakLexical))
	}

	return scheduler.New(
		database.WorkersToModels(workers),
		database.AvailabilityToModels(availability),
		config,
		database.HolidaysToModels(holidayRows),
		opts...,
	), nil
}

// storeSchedule upserts the persisted schedule for the result's month
func (h *Handler) storeSchedule(result models.MonthlySchedule) error {
	var row database.MonthlySchedule
	err := h.DB.First(&row, "year = ? AND month = ?", result.Year, result.Month).Error
	if err != nil {
		row = database.MonthlySchedule{Year: result.Year, Month: result.Month}
	}
	row.Assignments = result.Assignments
	row.GeneratedAt = result.GeneratedAt
	return h.DB.Save(&row).Error
}

func monthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, month, true
}
