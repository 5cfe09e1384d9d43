package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
	"medibook/utils"
)

// BookAppointment creates a new appointment.
// POST /api/appointments
func (hb *HandlerBundle) BookAppointment(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	appt, err := hb.Appointments.Book(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// TransitionAppointment applies a lifecycle action.
// PUT /api/appointments/:id/transition
func (hb *HandlerBundle) TransitionAppointment(c *gin.Context) {
	apptID := c.Param("id")
	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	appt, err := hb.Appointments.Transition(c.Request.Context(), apptID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// GetAppointment fetches one appointment by ID.
// GET /api/appointments/:id
func (hb *HandlerBundle) GetAppointment(c *gin.Context) {
	appt, err := hb.Appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListDoctorAppointments lists a doctor's non-cancelled appointments for a date.
// GET /api/doctors/:id/appointments?date=YYYY-MM-DD
func (hb *HandlerBundle) ListDoctorAppointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}
	appts, err := hb.Appointments.ListForDoctorDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListPatientAppointments lists a patient's appointment history.
// GET /api/patients/:id/appointments
func (hb *HandlerBundle) ListPatientAppointments(c *gin.Context) {
	appts, err := hb.Appointments.ListForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
