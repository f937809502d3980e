package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/models"
)

type configurationRequest struct {
	Name              string                         `json:"name" binding:"required"`
	Description       string                         `json:"description"`
	ShiftTypes        []models.ShiftTypeDefinition   `json:"shift_types" binding:"required"`
	DailyRequirements []models.DailyShiftRequirement `json:"daily_requirements" binding:"required"`
}

// ListConfigurations returns all staffing templates
func (h *Handler) ListConfigurations(c *gin.Context) {
	var configs []database.ShiftConfiguration
	if err := h.DB.Order("created_at").Find(&configs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch configurations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configurations": configs})
}

// GetActiveConfiguration returns the single active template
func (h *Handler) GetActiveConfiguration(c *gin.Context) {
	var config database.ShiftConfiguration
	if err := h.DB.First(&config, "is_active = ?", true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active configuration"})
		return
	}
	c.JSON(http.StatusOK, config)
}

// CreateConfiguration adds a staffing template. The first template ever
// created becomes active immediately.
func (h *Handler) CreateConfiguration(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	h.DB.Model(&database.ShiftConfiguration{}).Count(&count)

	config := database.ShiftConfiguration{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		ShiftTypes:        req.ShiftTypes,
		DailyRequirements: req.DailyRequirements,
		IsActive:          count == 0,
	}

	if err := h.DB.Create(&config).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create configuration"})
		return
	}

	h.Log.Info("configuration created", zap.String("id", config.ID), zap.Bool("active", config.IsActive))
	c.JSON(http.StatusCreated, config)
}

// UpdateConfiguration replaces a template's contents
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	id := c.Param("id")

	var config database.ShiftConfiguration
	if err := h.DB.First(&config, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}

	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.Name = req.Name
	config.Description = req.Description
	config.ShiftTypes = req.ShiftTypes
	config.DailyRequirements = req.DailyRequirements
	config.UpdatedAt = time.Now()

	if err := h.DB.Save(&config).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update configuration"})
		return
	}
	c.JSON(http.StatusOK, config)
}

// ActivateConfiguration makes one template active and deactivates the rest
func (h *Handler) ActivateConfiguration(c *gin.Context) {
	id := c.Param("id")

	var config database.ShiftConfiguration
	if err := h.DB.First(&config, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&database.ShiftConfiguration{}).Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&config).Update("is_active", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not activate configuration"})
		return
	}

	h.Log.Info("configuration activated", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Configuration activated"})
}

// DeleteConfiguration removes an inactive template
func (h *Handler) DeleteConfiguration(c *gin.Context) {
	id := c.Param("id")

	var config database.ShiftConfiguration
	if err := h.DB.First(&config, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}
	if config.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete the active configuration"})
		return
	}

	if err := h.DB.Delete(&config).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete configuration"})
		return
	}
	c.Status(http.StatusNoContent)
}
