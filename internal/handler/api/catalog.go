package api

import (
	"net/http"

	"petcare-booking/internal/domain/catalog"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/httperr"
	"petcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only plan/branch/time-slot fixtures.
// There is no usecase behind it: the catalog never changes after start.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// @Summary List plans
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PlanResponse
// @Router /catalog/plans [get]
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPlans(h.catalog.Plans()))
}

// @Summary Get plan
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} resdto.PlanResponse
// @Failure 404 {object} httperr.Response
// @Router /catalog/plans/{id} [get]
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	plan, ok := h.catalog.PlanByID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, usecase.ErrPlanNotFound, "Plan not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlan(plan))
}

// @Summary List branches
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BranchResponse
// @Router /catalog/branches [get]
func (h *CatalogHandler) ListBranches(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromBranches(h.catalog.Branches()))
}

// @Summary List time slots
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TimeSlotsResponse
// @Router /catalog/time-slots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.TimeSlotsResponse{TimeSlots: h.catalog.TimeSlots()})
}
