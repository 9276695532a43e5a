package api

import (
	"net/http"

	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	professionalUseCase usecase.ProfessionalUseCase
}

func NewProfessionalHandler(professionalUseCase usecase.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUseCase: professionalUseCase,
	}
}

// @Summary List professionals
// @Description List all professionals in the directory
// @Tags professionals
// @Produce json
// @Success 200 {array} resdto.ProfessionalResponse
// @Router /professionals [get]
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	professionalsRM, err := h.professionalUseCase.ListProfessionals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load professionals", nil)
		return
	}

	responses, err := toProfessionalResponses(professionalsRM)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load professionals", nil)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary List professionals by specialization
// @Description List professionals whose specialization matches the given term
// @Tags professionals
// @Produce json
// @Param specialization path string true "Specialization term"
// @Success 200 {array} resdto.ProfessionalResponse
// @Router /professionals/specialization/{specialization} [get]
func (h *ProfessionalHandler) ListBySpecialization(c *gin.Context) {
	professionalsRM, err := h.professionalUseCase.ListBySpecialization(c.Request.Context(), c.Param("specialization"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load professionals", nil)
		return
	}

	responses, err := toProfessionalResponses(professionalsRM)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load professionals", nil)
		return
	}

	c.JSON(http.StatusOK, responses)
}

func toProfessionalResponses(rms []*readmodel.ProfessionalRM) ([]*resdto.ProfessionalResponse, error) {
	responses := make([]*resdto.ProfessionalResponse, len(rms))
	for i, rm := range rms {
		resp, err := resdto.FromProfessionalRM(rm)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}
	return responses, nil
}
