package handlers

import (
	"net/http"

	dom "Motiv/internal/domain"
	"Motiv/internal/dto"
	"Motiv/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves public reference data.
type CatalogHandler struct {
	catalog *service.CatalogService
	errs    *Responder
}

func NewCatalogHandler(catalog *service.CatalogService, errs *Responder) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, errs: errs}
}

// Config godoc
// @Summary      Goal rules
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.RulesResponse
// @Failure      502  {object}  map[string]string
// @Router       /config [get]
func (h *CatalogHandler) Config(c *gin.Context) {
	r, err := h.catalog.Rules(c.Request.Context())
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rulesToResponse(r))
}

// Charities godoc
// @Summary      Donation targets
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListCharitiesResponse
// @Failure      502  {object}  map[string]string
// @Router       /charities [get]
func (h *CatalogHandler) Charities(c *gin.Context) {
	list, err := h.catalog.Charities(c.Request.Context())
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	out := make([]dto.CharityResponse, len(list))
	for i, ch := range list {
		out[i] = dto.CharityResponse{
			ID:          ch.ID,
			Name:        ch.Name,
			Description: ch.Description,
			LogoURL:     ch.LogoURL,
			Website:     ch.Website,
		}
	}
	c.JSON(http.StatusOK, dto.ListCharitiesResponse{Items: out})
}

func rulesToResponse(r dom.Rules) dto.RulesResponse {
	return dto.RulesResponse{
		SupervisionTimeoutHours: r.SupervisionTimeoutHours,
		MinGoalHours:            r.MinGoalHours,
		MaxGoalHours:            r.MaxGoalHours,
		MinGoalValue:            r.MinGoalValue,
		MaxGoalValue:            r.MaxGoalValue,
		GoalCreationFee:         r.GoalCreationFee,
		OTPTimeout:              r.OTPTimeout,
	}
}
