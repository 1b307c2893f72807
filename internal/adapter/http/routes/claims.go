package routes

import (
	"supplement_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims      = "/claims"
	PathSupplements = "/supplements"
	PathParties     = "/parties"
	PathCommissions = "/commissions"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, supplementHandler *handlers.SupplementHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.CreateClaim)
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.PATCH("/:id/status", claimHandler.ChangeStatus)
		claims.GET("/:id/transitions", claimHandler.GetTransitions)
		claims.POST("/:id/recalculate", claimHandler.Recalculate)
		claims.PATCH("/:id/units", claimHandler.UpdateUnits)

		claims.POST("/:id/supplements", supplementHandler.CreateSupplement)
		claims.GET("/:id/supplements", supplementHandler.ListSupplements)
	}
}

func addSupplementRoutes(rg *gin.RouterGroup, supplementHandler *handlers.SupplementHandler) {
	supplements := rg.Group(PathSupplements)
	{
		supplements.PATCH("/:id/status", supplementHandler.ChangeStatus)
		supplements.DELETE("/:id", supplementHandler.DeleteSupplement)
	}
}

func addPartyRoutes(rg *gin.RouterGroup, partyHandler *handlers.PartyHandler) {
	parties := rg.Group(PathParties)
	{
		parties.PUT("/:id", partyHandler.UpsertParty)
		parties.GET("/:id", partyHandler.GetParty)
		parties.GET("/:id/rate-profile", partyHandler.GetRateProfile)
	}
}

func addCommissionRoutes(rg *gin.RouterGroup, commissionHandler *handlers.CommissionHandler) {
	rg.POST(PathCommissions+"/calculate", commissionHandler.Calculate)
}
