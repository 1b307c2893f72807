package handlers

import (
	"errors"
	"net/http"
	"strings"

	"supplement_tracker/internal/domain/calculation"
	"supplement_tracker/internal/domain/workflow"
	"supplement_tracker/internal/usecase"
	"supplement_tracker/internal/usecase/interfaces"
	"supplement_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActorHeader names the caller recorded in the audit log.
const ActorHeader = "X-Actor"

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func actor(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(ActorHeader))
}

func writeError(c *gin.Context, tag string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error(tag+" request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		zap.L().Info(tag+" request rejected", zap.String("path", c.FullPath()), zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// mapError translates use case and domain errors into the HTTP envelope:
// 400 invalid input, 404 missing entity, 409 workflow and concurrency conflicts, 500 otherwise.
func mapError(err error) *pkg.AppError {
	var te *workflow.TransitionError
	if errors.As(err, &te) {
		msg := "Illegal status transition: " + te.Error()
		return pkg.NewDomainError("ILLEGAL_TRANSITION", msg, err, http.StatusConflict).
			WithDetail("from", te.From).
			WithDetail("to", te.To).
			WithDetail("allowed_next_statuses", allowedOrEmpty(te.Allowed))
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID),
		errors.Is(err, usecase.ErrInvalidClaimNumber),
		errors.Is(err, usecase.ErrInvalidInitialValue),
		errors.Is(err, usecase.ErrInvalidTotalUnits),
		errors.Is(err, usecase.ErrInvalidJobType),
		errors.Is(err, usecase.ErrInvalidPropertyType),
		errors.Is(err, usecase.ErrInvalidSupplementID),
		errors.Is(err, usecase.ErrInvalidSupplementAmount),
		errors.Is(err, usecase.ErrInvalidSquares),
		errors.Is(err, usecase.ErrInvalidApprovedAmount),
		errors.Is(err, usecase.ErrInvalidPartyID),
		errors.Is(err, usecase.ErrInvalidPartyRole):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, calculation.ErrInvalidInput), errors.Is(err, workflow.ErrUnknownStatus):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplementNotFound):
		return pkg.NewDomainErrorSimple("SUPPLEMENT_NOT_FOUND", "Supplement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartyNotFound):
		return pkg.NewDomainErrorSimple("PARTY_NOT_FOUND", "Party not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplementNotDraft):
		return pkg.NewDomainErrorSimple("SUPPLEMENT_NOT_DRAFT", "Only draft supplements can be deleted", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Claim was modified by another request, retry", http.StatusConflict)
	}
	return mapBillingPaymentError(err)
}

func allowedOrEmpty(allowed []string) []string {
	if allowed == nil {
		return []string{}
	}
	return allowed
}
