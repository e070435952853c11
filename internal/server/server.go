// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/config"
	"github.com/pelycan/api/internal/email"
	"github.com/pelycan/api/internal/handler"
	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
	"github.com/pelycan/api/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run wires the whole service together and blocks until shutdown. Both
// cmd/api and the serve subcommand call it.
func Run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	emergencyRepo := repository.NewEmergencyRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	housingRepo := repository.NewHousingRepository(db)
	structureRepo := repository.NewStructureRepository(db)
	shelterRepo := repository.NewShelterRepository(db)
	supportRepo := repository.NewSupportRequestRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService, cfg)
	caseService := service.NewCaseService(caseRepo)
	emergencyService := service.NewEmergencyService(emergencyRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, emailService)
	statsService := service.NewStatsService(statsRepo)
	housingService := service.NewHousingService(housingRepo)
	structureService := service.NewStructureService(structureRepo)
	shelterService := service.NewShelterService(shelterRepo)
	supportService := service.NewSupportRequestService(supportRepo)
	donationService := service.NewDonationService(donationRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	alertService := service.NewAlertService(alertRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	adminHandler := handler.NewAdminHandler(userService, caseService, assignmentService, emergencyService, statsService)
	proHandler := handler.NewProHandler(userService, caseService, statsService)
	emergencyHandler := handler.NewEmergencyHandler(emergencyService)
	housingHandler := handler.NewHousingHandler(housingService)
	structureHandler := handler.NewStructureHandler(structureService)
	shelterHandler := handler.NewShelterHandler(shelterService)
	supportHandler := handler.NewSupportRequestHandler(supportService)
	donationHandler := handler.NewDonationHandler(donationService)
	messageHandler := handler.NewMessageHandler(messageService)
	alertHandler := handler.NewAlertHandler(alertService)

	authenticate := middleware.AuthMiddleware(tokenManager, userRepo)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	proOnly := middleware.RequireRole(model.RoleProfessional)
	staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleProfessional)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes. Victims must be able to reach out without an
		// account.
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/register", authHandler.RegisterHandler)
			r.Post("/auth/login", authHandler.LoginHandler)
			r.Post("/support-requests", supportHandler.CreateHandler)
			r.Post("/structure-messages", messageHandler.SendToStructureHandler)
		})

		r.Get("/structures", structureHandler.ListHandler)
		r.Get("/structures/{id}", structureHandler.GetHandler)
		r.Get("/shelters", shelterHandler.ListHandler)
		r.Get("/shelters/{id}", shelterHandler.GetHandler)
		r.Get("/housing", housingHandler.ListHandler)
		r.Get("/housing/{id}", housingHandler.GetHandler)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Route("/emergency", func(r chi.Router) {
				r.Post("/request", emergencyHandler.RequestHandler)
				r.Get("/status/{id}", emergencyHandler.StatusHandler)
				r.Put("/status/{id}", emergencyHandler.UpdateStatusHandler)
				r.Get("/history/{userID}", emergencyHandler.HistoryHandler)
			})

			r.Route("/donations", func(r chi.Router) {
				r.Get("/", donationHandler.MyDonationsHandler)
				r.Post("/", donationHandler.CreateHandler)
				r.Get("/{id}", donationHandler.GetHandler)
				r.With(adminOnly).Patch("/{id}/status", donationHandler.UpdateStatusHandler)
			})

			r.Route("/conversations", func(r chi.Router) {
				r.Get("/", messageHandler.ConversationsHandler)
				r.Post("/", messageHandler.StartConversationHandler)
				r.Get("/unread-count", messageHandler.UnreadCountHandler)
				r.Get("/{id}/messages", messageHandler.MessagesHandler)
				r.Post("/{id}/messages", messageHandler.SendMessageHandler)
				r.Post("/{id}/report", messageHandler.ReportConversationHandler)
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Post("/create", alertHandler.TriggerHandler)
				r.Get("/me", alertHandler.ActiveAlertHandler)

				r.Group(func(r chi.Router) {
					r.Use(adminOnly)
					r.Get("/", alertHandler.ListHandler)
					r.Get("/active", alertHandler.ActiveListHandler)
					r.Get("/{id}", alertHandler.GetHandler)
					r.Post("/{id}/message", alertHandler.AddMessageHandler)
					r.Put("/{id}/process", alertHandler.ProcessHandler)
					r.Put("/{id}/close", alertHandler.CloseHandler)
					r.Patch("/{id}/viewed", alertHandler.MarkViewedHandler)
				})
			})

			r.Post("/housing-requests", housingHandler.SubmitAddRequestHandler)

			r.Group(func(r chi.Router) {
				r.Use(staffOnly)
				r.Get("/structure-messages/{id}", messageHandler.StructureMessagesHandler)
				r.Patch("/structure-messages/{id}/read", messageHandler.MarkStructureMessageReadHandler)
			})

			// Admin back office
			r.Route("/admin", func(r chi.Router) {
				r.Use(adminOnly)

				r.Get("/statistics", adminHandler.StatisticsHandler)
				r.Get("/dashboard/stats", adminHandler.DashboardStatsHandler)

				r.Get("/professionals", adminHandler.ProfessionalsHandler)
				r.Get("/professionals/available", adminHandler.AvailableProfessionalsHandler)
				r.Get("/professionals/{id}/stats", adminHandler.ProfessionalStatsHandler)
				r.Patch("/professionals/{id}/status", adminHandler.UpdateProfessionalStatusHandler)
				r.Delete("/professionals/{id}", adminHandler.DeleteProfessionalHandler)

				r.Get("/unassigned-cases", adminHandler.UnassignedCasesHandler)
				r.Post("/cases", adminHandler.CreateCaseHandler)
				r.Post("/assignments", adminHandler.AssignCaseHandler)
				r.Get("/assignments/stats", adminHandler.AssignmentStatsHandler)
				r.Patch("/cases/{id}/status", adminHandler.UpdateCaseStatusHandler)

				r.Get("/users", adminHandler.UsersHandler)
				r.Patch("/users/{id}/status", adminHandler.UpdateUserStatusHandler)
				r.Patch("/users/{id}/role", adminHandler.UpdateUserRoleHandler)

				r.Get("/emergencies", adminHandler.PendingEmergenciesHandler)
				r.Get("/emergency/{id}", adminHandler.EmergencyDetailsHandler)
				r.Post("/emergency/{id}/assign", adminHandler.AssignEmergencyHandler)

				r.Post("/housing", housingHandler.CreateHandler)
				r.Put("/housing/{id}", housingHandler.UpdateHandler)
				r.Delete("/housing/{id}", housingHandler.RetireHandler)
				r.Get("/housing-requests", housingHandler.AddRequestsHandler)
				r.Put("/housing-requests/{id}/approve", housingHandler.ApproveAddRequestHandler)
				r.Put("/housing-requests/{id}/reject", housingHandler.RejectAddRequestHandler)

				r.Post("/structures", structureHandler.CreateHandler)
				r.Put("/structures/{id}", structureHandler.UpdateHandler)
				r.Delete("/structures/{id}", structureHandler.DeleteHandler)

				r.Post("/shelters", shelterHandler.CreateHandler)
				r.Put("/shelters/{id}", shelterHandler.UpdateHandler)
				r.Delete("/shelters/{id}", shelterHandler.DeleteHandler)

				r.Get("/support-requests", supportHandler.ListHandler)
				r.Get("/support-requests/{id}", supportHandler.GetHandler)
				r.Patch("/support-requests/{id}/status", supportHandler.UpdateStatusHandler)

				r.Get("/donations", donationHandler.ListHandler)
			})

			// Professional dashboard
			r.Route("/pro", func(r chi.Router) {
				r.Use(proOnly)

				r.Get("/dashboard/stats", proHandler.DashboardStatsHandler)
				r.Get("/cases/active", proHandler.ActiveCasesHandler)
				r.Get("/cases/completed", proHandler.CompletedCasesHandler)
				r.Get("/cases/recent", proHandler.RecentCasesHandler)
				r.Get("/cases/{id}", proHandler.CaseDetailsHandler)
				r.Put("/cases/{id}/status", proHandler.UpdateCaseStatusHandler)
				r.Post("/cases/{id}/notes", proHandler.AddCaseNoteHandler)
				r.Get("/profile", proHandler.ProfileHandler)
				r.Put("/profile", proHandler.UpdateProfileHandler)
			})
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"message":"Erreur interne du serveur"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
