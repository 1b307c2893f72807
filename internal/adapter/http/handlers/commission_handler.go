package handlers

import (
	"net/http"

	request "supplement_tracker/internal/adapter/http/dto/request"
	response "supplement_tracker/internal/adapter/http/dto/response"
	"supplement_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

// Calculate godoc
// @Summary  Quote a commission without touching any claim
// @Tags     commissions
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CalculateCommissionRequest  true  "Commission facts"
// @Success  200      {object}  response.CommissionResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /commissions/calculate [post]
func (h *CommissionHandler) Calculate(c *gin.Context) {
	var payload request.CalculateCommissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	res, err := h.usecase.Quote(c.Request.Context(), payload.ToQuote())
	if err != nil {
		writeError(c, "[commission][handler]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommission(res))
}
