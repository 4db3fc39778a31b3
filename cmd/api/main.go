package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nes268/healmate/internal/config"
	"github.com/nes268/healmate/internal/email"
	"github.com/nes268/healmate/internal/handler"
	appointmentHandler "github.com/nes268/healmate/internal/handler/appointment"
	authHandler "github.com/nes268/healmate/internal/handler/auth"
	dashboardHandler "github.com/nes268/healmate/internal/handler/dashboard"
	doctorHandler "github.com/nes268/healmate/internal/handler/doctor"
	emergencyHandler "github.com/nes268/healmate/internal/handler/emergency"
	paymentHandler "github.com/nes268/healmate/internal/handler/payment"
	userHandler "github.com/nes268/healmate/internal/handler/user"
	waittimeHandler "github.com/nes268/healmate/internal/handler/waittime"
	"github.com/nes268/healmate/internal/middleware"
	"github.com/nes268/healmate/internal/repository/sqlite"
	"github.com/nes268/healmate/internal/router"
	appointmentService "github.com/nes268/healmate/internal/service/appointment"
	authService "github.com/nes268/healmate/internal/service/auth"
	dashboardService "github.com/nes268/healmate/internal/service/dashboard"
	doctorService "github.com/nes268/healmate/internal/service/doctor"
	emergencyService "github.com/nes268/healmate/internal/service/emergency"
	paymentService "github.com/nes268/healmate/internal/service/payment"
	userService "github.com/nes268/healmate/internal/service/user"
	waittimeService "github.com/nes268/healmate/internal/service/waittime"
	"github.com/nes268/healmate/pkg/auth"
	"github.com/nes268/healmate/pkg/logger"
	"github.com/nes268/healmate/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if cfg.Database.Seed {
		if err := sqlite.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	userRepo := sqlite.NewUserRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	waitTimeRepo := sqlite.NewWaitTimeRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)

	revoker, err := newRevoker(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token revoker")
	}

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	hasher := security.NewBcryptHasher(cfg.JWT.BcryptCost)
	emailSvc := email.NewService(cfg.SMTP)

	authSvc := authService.NewService(userRepo, hasher, jwtSvc, revoker)
	userSvc := userService.NewService(userRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, emailSvc)
	dashboardSvc := dashboardService.NewService(appointmentRepo, paymentRepo)
	paymentSvc := paymentService.NewService(paymentRepo)
	waittimeSvc := waittimeService.NewService(waitTimeRepo)
	emergencySvc := emergencyService.NewService(emailSvc)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		handler.NewHealthHandler(db),
		authHandler.NewHandler(authSvc),
		[]router.Handler{
			doctorHandler.NewHandler(doctorSvc),
			waittimeHandler.NewHandler(waittimeSvc),
		},
		[]router.Handler{
			userHandler.NewHandler(userSvc),
			dashboardHandler.NewHandler(dashboardSvc),
			appointmentHandler.NewHandler(appointmentSvc),
			paymentHandler.NewHandler(paymentSvc),
			emergencyHandler.NewHandler(emergencySvc),
		},
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

// newRevoker prefers Redis when configured so revocations survive
// restarts; otherwise the denylist lives in process memory.
func newRevoker(cfg *config.Config) (auth.TokenRevoker, error) {
	if cfg.Redis.URL != "" {
		return auth.NewRedisRevoker(cfg.Redis.URL)
	}
	return auth.NewMemoryRevoker(), nil
}
