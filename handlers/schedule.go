package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibook/models"
	"medibook/utils"
)

// BlockDate marks a whole date unavailable for a doctor.
// PUT /api/doctors/:id/block-date
func (hb *HandlerBundle) BlockDate(c *gin.Context) {
	var req models.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	override, err := hb.Schedule.BlockDate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

// UpsertOverride creates or replaces a date-specific override.
// PUT /api/doctors/:id/overrides
func (hb *HandlerBundle) UpsertOverride(c *gin.Context) {
	var req models.OverrideUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	override, err := hb.Schedule.UpsertOverride(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

// ListOverrides lists a doctor's date-specific overrides.
// GET /api/doctors/:id/overrides
func (hb *HandlerBundle) ListOverrides(c *gin.Context) {
	overrides, err := hb.Schedule.ListOverrides(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}

// DeleteOverride removes a date-specific override.
// DELETE /api/doctors/:id/overrides/:date
func (hb *HandlerBundle) DeleteOverride(c *gin.Context) {
	if err := hb.Schedule.DeleteOverride(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// UpdateWeeklySchedule replaces the doctor's recurring weekly template.
// PUT /api/doctors/:id/schedule
func (hb *HandlerBundle) UpdateWeeklySchedule(c *gin.Context) {
	var req models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := hb.Schedule.UpdateWeeklyTemplate(c.Request.Context(), c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// AddBlockedDate adds a date to the doctor's blockedDates set.
// POST /api/doctors/:id/blocked-dates
func (hb *HandlerBundle) AddBlockedDate(c *gin.Context) {
	var req models.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := hb.Schedule.AddBlockedDate(c.Request.Context(), c.Param("id"), req.Date, req.Force); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": true})
}

// UnblockDate removes a date from the doctor's blockedDates set.
// DELETE /api/doctors/:id/blocked-dates/:date
func (hb *HandlerBundle) UnblockDate(c *gin.Context) {
	if err := hb.Schedule.RemoveBlockedDate(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unblocked": true})
}
