package handlers

import (
	"net/http"

	request "supplement_tracker/internal/adapter/http/dto/request"
	response "supplement_tracker/internal/adapter/http/dto/response"
	"supplement_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles HTTP requests for claims and their workflow.

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// CreateClaim godoc
// @Summary      Open a claim
// @Description  Creates a claim in missing_info with metrics and commission computed from its initial facts.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                      false  "Actor recorded in the audit log"
// @Param        payload  body      request.CreateClaimRequest  true   "Claim"
// @Success      201      {object}  response.ClaimResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var payload request.CreateClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	claim, err := h.usecase.CreateClaim(c.Request.Context(), payload.ToNewClaim(actor(c)))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

// ListClaims godoc
// @Summary  List claims
// @Tags     claims
// @Produce  json
// @Success  200  {array}  response.ClaimResponse
// @Router   /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// GetClaim godoc
// @Summary  Get a claim
// @Tags     claims
// @Produce  json
// @Param    id   path      string  true  "Claim ID"
// @Success  200  {object}  response.ClaimResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ChangeStatus godoc
// @Summary      Move a claim to another status
// @Description  Rejected transitions answer 409 with the legal next statuses in details.allowed_next_statuses.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true   "Claim ID"
// @Param        X-Actor  header    string                            false  "Actor recorded in the audit log"
// @Param        payload  body      request.ChangeClaimStatusRequest  true   "Target status"
// @Success      200      {object}  response.ClaimResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /claims/{id}/status [patch]
func (h *ClaimHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeClaimStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	claim, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ClaimStatus(), actor(c))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// GetTransitions godoc
// @Summary  Legal next statuses of a claim
// @Tags     claims
// @Produce  json
// @Param    id   path      string  true  "Claim ID"
// @Success  200  {object}  response.ClaimTransitionsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /claims/{id}/transitions [get]
func (h *ClaimHandler) GetTransitions(c *gin.Context) {
	ctx := c.Request.Context()
	claim, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	next, err := h.usecase.AllowedTransitions(ctx, claim.ID)
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(claim, next))
}

// Recalculate godoc
// @Summary  Rebuild a claim's metrics and commission from all of its supplements
// @Tags     claims
// @Produce  json
// @Param    id       path      string  true   "Claim ID"
// @Param    X-Actor  header    string  false  "Actor recorded in the audit log"
// @Success  200      {object}  response.ClaimResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /claims/{id}/recalculate [post]
func (h *ClaimHandler) Recalculate(c *gin.Context) {
	claim, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// UpdateUnits godoc
// @Summary  Update the measured roof squares of a claim
// @Tags     claims
// @Accept   json
// @Produce  json
// @Param    id       path      string                      true   "Claim ID"
// @Param    X-Actor  header    string                      false  "Actor recorded in the audit log"
// @Param    payload  body      request.UpdateUnitsRequest  true   "Units"
// @Success  200      {object}  response.ClaimResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /claims/{id}/units [patch]
func (h *ClaimHandler) UpdateUnits(c *gin.Context) {
	var payload request.UpdateUnitsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	claim, err := h.usecase.UpdateUnits(c.Request.Context(), c.Param("id"), *payload.TotalUnits, actor(c))
	if err != nil {
		writeError(c, "[claim][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}
