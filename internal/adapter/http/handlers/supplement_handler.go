package handlers

import (
	"net/http"

	request "supplement_tracker/internal/adapter/http/dto/request"
	response "supplement_tracker/internal/adapter/http/dto/response"
	"supplement_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SupplementHandler handles HTTP requests for the supplements of a claim.

type SupplementHandler struct {
	usecase usecase.ISupplementUseCase
}

func NewSupplementHandler(uc usecase.ISupplementUseCase) *SupplementHandler {
	return &SupplementHandler{usecase: uc}
}

// CreateSupplement godoc
// @Summary  Add a draft supplement to a claim
// @Tags     supplements
// @Accept   json
// @Produce  json
// @Param    id       path      string                           true   "Claim ID"
// @Param    X-Actor  header    string                           false  "Actor recorded in the audit log"
// @Param    payload  body      request.CreateSupplementRequest  true   "Supplement"
// @Success  201      {object}  response.SupplementResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /claims/{id}/supplements [post]
func (h *SupplementHandler) CreateSupplement(c *gin.Context) {
	var payload request.CreateSupplementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToNewSupplement(actor(c)))
	if err != nil {
		writeError(c, "[supplement][handler]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplement(s))
}

// ListSupplements godoc
// @Summary  List the supplements of a claim
// @Tags     supplements
// @Produce  json
// @Param    id   path     string  true  "Claim ID"
// @Success  200  {array}  response.SupplementResponse
// @Router   /claims/{id}/supplements [get]
func (h *SupplementHandler) ListSupplements(c *gin.Context) {
	items, err := h.usecase.ListByClaim(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[supplement][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplements(items))
}

// ChangeStatus godoc
// @Summary      Submit, approve, partially approve or deny a supplement
// @Description  approved_amount is required for partial. Changes into or out of approved/partial recompute the claim.
// @Tags         supplements
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true   "Supplement ID"
// @Param        X-Actor  header    string                           false  "Actor recorded in the audit log"
// @Param        payload  body      request.SupplementStatusRequest  true   "Decision"
// @Success      200      {object}  response.SupplementDecisionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /supplements/{id}/status [patch]
func (h *SupplementHandler) ChangeStatus(c *gin.Context) {
	var payload request.SupplementStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	s, claim, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ToDecision(actor(c)))
	if err != nil {
		writeError(c, "[supplement][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.SupplementDecisionResponse{
		Supplement: response.FromSupplement(s),
		Claim:      response.FromClaim(claim),
	})
}

// DeleteSupplement godoc
// @Summary  Delete a draft supplement
// @Tags     supplements
// @Param    id       path  string  true   "Supplement ID"
// @Param    X-Actor  header  string  false  "Actor recorded in the audit log"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /supplements/{id} [delete]
func (h *SupplementHandler) DeleteSupplement(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actor(c)); err != nil {
		writeError(c, "[supplement][handler]", err)
		return
	}
	c.Status(http.StatusNoContent)
}
