package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/auth"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New opens the database, resolves the signing secret and wires every
// handler onto a single mux. The returned *sql.DB is owned by the caller.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	db, err := repository.Open(ctx, cfg.DBConnectionString, cfg.Environment)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	secret, err := service.ResolveSigningSecret(ctx, cfg, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	authority := auth.NewAuthority([]byte(secret), time.Duration(cfg.TokenTTLHours)*time.Hour)

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepo(db)
	usageRepo := repository.NewUsageRepo(db)

	userSvc := service.NewUserService(userRepo, authority, logger)
	convertSvc := service.NewConvertService(userRepo, usageRepo, cfg, logger)

	authHandler := handler.NewAuthHandler(userSvc, validate, logger)
	userHandler := handler.NewUserHandler(userSvc, logger)
	convertHandler := handler.NewConvertHandler(convertSvc, cfg, logger)
	billingHandler := handler.NewBillingHandler(logger)

	authMw := middleware.AuthMiddleware(authority, logger)

	mux := http.NewServeMux()
	authHandler.RegisterRoutes(mux)
	userHandler.RegisterRoutes(mux, authMw)
	convertHandler.RegisterRoutes(mux, authMw)
	billingHandler.RegisterRoutes(mux)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, nil
}
