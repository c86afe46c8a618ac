package api

import (
	"net/http"

	resdto "econlearn/internal/handler/dto/response"
	"econlearn/internal/handler/httperr"
	"econlearn/internal/pkg/errs"
	"econlearn/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errConceptNotFound = errs.New("concept not found")
	errNoExpertsFound  = errs.New("no experts cover this concept")
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List concepts
// @Description List all concepts with their learning modules
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ConceptsResponse
// @Router /api/concepts [get]
func (h *CatalogHandler) ListConcepts(c *gin.Context) {
	views := h.catalogQueries.ListConcepts(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromConceptViews(views))
}

// @Summary Get concept
// @Description Get a single concept with its learning modules
// @Tags catalog
// @Produce json
// @Param id path string true "Concept ID"
// @Success 200 {object} resdto.ConceptsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/concepts/{id} [get]
func (h *CatalogHandler) GetConcept(c *gin.Context) {
	view, ok := h.catalogQueries.GetConcept(c.Request.Context(), c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errConceptNotFound, "Concept not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ConceptsResponse{
		Concepts: []resdto.ConceptResponse{resdto.FromConceptView(*view)},
	})
}

// @Summary List experts
// @Description List experts, optionally narrowed to those covering a concept
// @Tags catalog
// @Produce json
// @Param concept_id query string false "Concept ID filter"
// @Success 200 {object} resdto.ExpertsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/experts [get]
func (h *CatalogHandler) ListExperts(c *gin.Context) {
	conceptID := c.Query("concept_id")
	views := h.catalogQueries.ListExperts(c.Request.Context(), conceptID)

	if conceptID != "" && len(views) == 0 {
		httperr.AbortWithError(c, http.StatusNotFound, errNoExpertsFound, "No experts cover this concept yet", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpertViews(views))
}
