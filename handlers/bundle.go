// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibook/database/repository"
	"medibook/services/appointment"
	"medibook/services/schedule"
	"medibook/services/scheduling"
	"medibook/utils"
)

// HandlerBundle groups the endpoint handlers and their service dependencies.
type HandlerBundle struct {
	Scheduling   scheduling.Engine
	Appointments appointment.Service
	Schedule     schedule.Service
	DoctorRepo   repository.DoctorRepository
}

func NewHandlerBundle(
	engine scheduling.Engine,
	appointments appointment.Service,
	scheduleSvc schedule.Service,
	doctorRepo repository.DoctorRepository,
) *HandlerBundle {
	return &HandlerBundle{
		Scheduling:   engine,
		Appointments: appointments,
		Schedule:     scheduleSvc,
		DoctorRepo:   doctorRepo,
	}
}

// respondServiceError maps typed domain errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch code := scheduling.ErrCode(err); code {
	case scheduling.CodeValidation:
		utils.JSONCodedError(c, http.StatusBadRequest, code, err.Error())
	case scheduling.CodeSlotUnavailable, scheduling.CodeInvalidTransition, scheduling.CodeBlockConflict:
		utils.JSONCodedError(c, http.StatusConflict, code, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
