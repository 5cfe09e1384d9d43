package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
	"medibook/utils"
)

// RegisterDoctor creates a doctor profile.
// POST /api/doctors
func (hb *HandlerBundle) RegisterDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := hb.DoctorRepo.Create(c.Request.Context(), &doctor); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// GetDoctor fetches a doctor profile with its embedded schedule.
// GET /api/doctors/:id
func (hb *HandlerBundle) GetDoctor(c *gin.Context) {
	doctor, err := hb.DoctorRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctor)
}
