package api

import (
	"errors"
	"net/http"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/schedule"
	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	schedulingUseCase usecase.SchedulingUseCase
}

func NewAppointmentHandler(schedulingUseCase usecase.SchedulingUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		schedulingUseCase: schedulingUseCase,
	}
}

// @Summary Book appointment
// @Description Book a half-hour slot with a professional. The listed availability is advisory; a 409 means the slot was taken first.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	patientID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(patientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	appointmentRM, err := h.schedulingUseCase.BookAppointment(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfessionalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Professional not found",
			})
		case errors.Is(err, usecase.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Time is not a bookable slot of the professional's working hours",
			})
		case errors.Is(err, usecase.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentRM(appointmentRM))
}

// @Summary List my appointments
// @Description List the caller's appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	patientID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentsRM, err := h.schedulingUseCase.ListAppointmentsForPatient(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentListResponse, len(appointmentsRM))
	for i, rm := range appointmentsRM {
		response[i] = resdto.FromAppointmentListRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update appointment status
// @Description Move one of the caller's appointments through its lifecycle (confirm, cancel, complete)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	patientID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	next, err := appointment.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown appointment status",
		})
		return
	}

	appointmentRM, err := h.schedulingUseCase.UpdateAppointmentStatus(c.Request.Context(), patientID, appointmentID, next)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, usecase.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Status transition not permitted",
			})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown appointment status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRM(appointmentRM))
}

// @Summary List free slots
// @Description List a professional's free half-hour slots for a date
// @Tags professionals
// @Produce json
// @Param id path string true "Professional ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /professionals/{id}/availability/{date} [get]
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid professional ID format",
		})
		return
	}

	date, err := schedule.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	slots, err := h.schedulingUseCase.ListAvailability(c.Request.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfessionalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Professional not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(professionalID, date, slots))
}
