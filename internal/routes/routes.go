package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	"github.com/BruksfildServices01/slot-booker/internal/config"
	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/handlers"
	"github.com/BruksfildServices01/slot-booker/internal/middleware"
	ucClient "github.com/BruksfildServices01/slot-booker/internal/usecase/client"
	ucReservation "github.com/BruksfildServices01/slot-booker/internal/usecase/reservation"
)

// Deps are the singletons built by main.
type Deps struct {
	Config      *config.Config
	Log         *logrus.Logger
	Store       domain.Store
	Clients     domain.ClientRegistry
	Audit       *audit.Dispatcher
	Idempotency middleware.IdempotencyStore

	// DB is nil with the memory driver; audit log routes are then not mounted.
	DB *gorm.DB
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.RateLimiter(cfg.RateLimit, d.Log),
		middleware.RequestTimeout(cfg.RequestTimeout),
	)

	// ======================================================
	// USE CASES: RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(d.Store, d.Clients, d.Audit, d.Log)
	cancelReservationUC := ucReservation.NewCancelReservation(d.Store, d.Audit, d.Log)
	getReservationUC := ucReservation.NewGetReservation(d.Store)
	listClientReservationsUC := ucReservation.NewListClientReservations(d.Store, d.Clients)
	availabilityUC := ucReservation.NewGetAvailability(d.Store)

	// ======================================================
	// USE CASES: CLIENTS
	// ======================================================
	createClientUC := ucClient.NewCreateClient(d.Clients, d.Audit, d.Log, cfg.CheckEmailDomain)
	listClientsUC := ucClient.NewListClients(d.Clients)

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		getReservationUC,
		listClientReservationsUC,
		availabilityUC,
		cfg.Timezone,
	)
	clientHandler := handlers.NewClientHandler(createClientUC, listClientsUC)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// READS
		// ------------------------------
		api.GET("/slots", reservationHandler.ListAvailableSlots)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id/reservations", reservationHandler.ListByClient)

		// ------------------------------
		// WRITES
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.POST("/reservations", middleware.Idempotency(d.Idempotency, d.Log), reservationHandler.Create)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.POST("/clients", clientHandler.Create)

			if d.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
