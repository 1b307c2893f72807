package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"supplement_tracker/internal/adapter/http/handlers"
	"supplement_tracker/internal/adapter/persistence/repository"
	"supplement_tracker/internal/infrastructure/config"
	"supplement_tracker/internal/infrastructure/database"
	"supplement_tracker/internal/infrastructure/logging"
	"supplement_tracker/internal/infrastructure/notifications"
	"supplement_tracker/internal/infrastructure/payments"
	"supplement_tracker/internal/usecase"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups every HTTP handler the router exposes.
type Handlers struct {
	Claim      *handlers.ClaimHandler
	Supplement *handlers.SupplementHandler
	Party      *handlers.PartyHandler
	Commission *handlers.CommissionHandler
	Payment    *handlers.BillingPaymentHandler
}

// Run wires the service from cfg and serves HTTP until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	claimRepo := repository.NewClaimDynamoRepository(ddb, cfg.Tables.Claims, cfg.Tables.Supplements)
	supplementRepo := repository.NewSupplementDynamoRepository(ddb, cfg.Tables.Supplements)
	partyRepo := repository.NewPartyDynamoRepository(ddb, cfg.Tables.Parties)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	audit := repository.NewAuditDynamoRecorder(ddb, cfg.Tables.AuditLog)

	dispatcher := notifications.NewDispatcher(notifications.LogSink{}, cfg.Notifications.QueueSize)

	var paymentGateway interfaces.IPaymentGateway
	if cfg.MercadoPago.Mock {
		zap.L().Info("[payment][gateway] mock mode enabled")
	} else if gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago); err != nil {
		zap.L().Warn("[payment][gateway] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = gw
	}

	router := NewRouter(Handlers{
		Claim:      handlers.NewClaimHandler(usecase.NewClaimUseCase(claimRepo, supplementRepo, partyRepo, audit, dispatcher)),
		Supplement: handlers.NewSupplementHandler(usecase.NewSupplementUseCase(supplementRepo, claimRepo, partyRepo, audit, dispatcher)),
		Party:      handlers.NewPartyHandler(usecase.NewPartyUseCase(partyRepo, audit)),
		Commission: handlers.NewCommissionHandler(usecase.NewCommissionUseCase(partyRepo)),
		Payment: handlers.NewBillingPaymentHandler(
			usecase.NewBillingPaymentUseCase(paymentRepo, claimRepo, paymentGateway, usecase.PaymentOptions{
				MockMode:        cfg.MercadoPago.Mock,
				AccessToken:     cfg.MercadoPago.AccessToken,
				TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
				TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
			}),
			cfg.MercadoPago.Mock,
		),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(srv, dispatcher)
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(), logging.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, h.Claim, h.Supplement)
	addSupplementRoutes(v1, h.Supplement)
	addPartyRoutes(v1, h.Party)
	addCommissionRoutes(v1, h.Commission)
	addBillingRoutes(v1, h.Payment)
	return router
}

func serve(srv *http.Server, dispatcher *notifications.Dispatcher) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[http] server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return eris.Wrap(err, "http: listen")
		}
		return nil
	case sig := <-quit:
		zap.L().Info("[http] shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return eris.Wrap(err, "http: shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		zap.L().Warn("[notification][dispatcher] pending notifications dropped on shutdown", zap.Error(err))
	}
	return nil
}
