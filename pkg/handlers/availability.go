package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/models"
)

type availabilityEntryRequest struct {
	WorkerID    string `json:"worker_id" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Week        int    `json:"week" binding:"required,min=1,max=53"`
	Day         int    `json:"day" binding:"min=0,max=6"`
	ShiftTypeID string `json:"shift_type_id" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=available preferred unavailable"`
}

// GetAvailability returns availability entries, optionally filtered by
// worker, year and week. Slots without an entry are implicitly available.
func (h *Handler) GetAvailability(c *gin.Context) {
	query := h.DB.Model(&database.AvailabilityEntry{})

	if workerID := c.Query("worker_id"); workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}
	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		query = query.Where("year = ?", y)
	}
	if week := c.Query("week"); week != "" {
		w, err := strconv.Atoi(week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
			return
		}
		query = query.Where("week = ?", w)
	}

	var entries []database.AvailabilityEntry
	if err := query.Order("year, week, day").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": entries})
}

// SetAvailability bulk-upserts availability entries. Setting a slot back
// to "available" deletes its row, since no entry already means available.
func (h *Handler) SetAvailability(c *gin.Context) {
	var req struct {
		Entries []availabilityEntryRequest `json:"entries" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, e := range req.Entries {
		if e.Status == string(models.StatusAvailable) {
			h.DB.Delete(&database.AvailabilityEntry{},
				"worker_id = ? AND year = ? AND week = ? AND day = ? AND shift_type_id = ?",
				e.WorkerID, e.Year, e.Week, e.Day, e.ShiftTypeID)
			continue
		}

		entry := database.AvailabilityEntry{
			WorkerID:    e.WorkerID,
			Year:        e.Year,
			Week:        e.Week,
			Day:         e.Day,
			ShiftTypeID: e.ShiftTypeID,
			Status:      e.Status,
		}
		err := h.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "worker_id"}, {Name: "year"}, {Name: "week"},
				{Name: "day"}, {Name: "shift_type_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status"}),
		}).Create(&entry).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save availability"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(req.Entries)})
}
