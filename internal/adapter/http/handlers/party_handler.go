package handlers

import (
	"net/http"

	request "supplement_tracker/internal/adapter/http/dto/request"
	response "supplement_tracker/internal/adapter/http/dto/response"
	"supplement_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartyHandler handles contractor and estimator configuration.

type PartyHandler struct {
	usecase usecase.IPartyUseCase
}

func NewPartyHandler(uc usecase.IPartyUseCase) *PartyHandler {
	return &PartyHandler{usecase: uc}
}

// UpsertParty godoc
// @Summary      Create or replace a contractor or estimator
// @Description  Rates are fractions (0.125 is 12.5%). Omitted rates stay unset and fall back to default_rate.
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true   "Party ID"
// @Param        X-Actor  header    string                      false  "Actor recorded in the audit log"
// @Param        payload  body      request.UpsertPartyRequest  true   "Party"
// @Success      200      {object}  response.PartyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /parties/{id} [put]
func (h *PartyHandler) UpsertParty(c *gin.Context) {
	var payload request.UpsertPartyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	p, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity(c.Param("id")), actor(c))
	if err != nil {
		writeError(c, "[party][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromParty(p))
}

// GetParty godoc
// @Summary  Get a contractor or estimator
// @Tags     parties
// @Produce  json
// @Param    id   path      string  true  "Party ID"
// @Success  200  {object}  response.PartyResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /parties/{id} [get]
func (h *PartyHandler) GetParty(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[party][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromParty(p))
}

// GetRateProfile godoc
// @Summary  Get the rates the commission calculator uses for a party
// @Tags     parties
// @Produce  json
// @Param    id   path      string  true  "Party ID"
// @Success  200  {object}  response.RateProfileResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /parties/{id}/rate-profile [get]
func (h *PartyHandler) GetRateProfile(c *gin.Context) {
	id := c.Param("id")
	rp, err := h.usecase.RateProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, "[party][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRateProfile(id, rp))
}
