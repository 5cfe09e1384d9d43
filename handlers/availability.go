package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibook/utils"
)

// GetAvailableSlots returns the bookable slots for a doctor on a date.
// GET /api/doctors/:id/slots?date=YYYY-MM-DD
func (hb *HandlerBundle) GetAvailableSlots(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	slots, err := hb.Scheduling.AvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctorId": doctorID,
		"date":     date,
		"slots":    slots,
	})
}
