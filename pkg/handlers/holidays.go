package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/holidays"
)

// ListHolidayCountries returns the countries with builtin holiday calendars
func (h *Handler) ListHolidayCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": holidays.SupportedCountries()})
}

// ListHolidays returns holidays, optionally restricted to one year
func (h *Handler) ListHolidays(c *gin.Context) {
	query := h.DB.Model(&database.Holiday{})

	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		query = query.Where("date LIKE ?", fmt.Sprintf("%04d-%%", y))
	}

	var rows []database.Holiday
	if err := query.Order("date").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch holidays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": rows})
}

// PopulateHolidays replaces the builtin public holidays with the calendar
// of one country for the requested years. Custom holidays are untouched.
func (h *Handler) PopulateHolidays(c *gin.Context) {
	var req struct {
		Country string `json:"country" binding:"required"`
		Years   []int  `json:"years" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rows []database.Holiday
	for _, year := range req.Years {
		list, err := holidays.ForYear(req.Country, year)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, holiday := range list {
			rows = append(rows, database.Holiday{
				Date: holiday.Date,
				Name: holiday.Name,
				Type: holiday.Type,
			})
		}
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&database.Holiday{}, "type = ?", "public").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not populate holidays"})
		return
	}

	h.Log.Info("holidays populated",
		zap.String("country", req.Country), zap.Int("count", len(rows)))
	c.JSON(http.StatusOK, gin.H{"populated": len(rows)})
}

// CreateHoliday adds a clinic-local holiday (staffed like a Sunday)
func (h *Handler) CreateHoliday(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required,datetime=2006-01-02"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := database.Holiday{Date: req.Date, Name: req.Name, Type: "custom"}
	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create holiday"})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// DeleteHoliday removes a holiday by id
func (h *Handler) DeleteHoliday(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.Holiday{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete holiday"})
		return
	}
	c.Status(http.StatusNoContent)
}
