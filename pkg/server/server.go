package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/de-tools/leak-finder/pkg/handlers/portal"
	leakfindermiddleware "github.com/de-tools/leak-finder/pkg/server/middleware"
	"github.com/de-tools/leak-finder/pkg/services/activity"
	"github.com/de-tools/leak-finder/pkg/services/state"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	State   *state.Service
	Auditor portal.Auditor
	Feed    *activity.Feed
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	handler := portal.NewHandler(deps.State, deps.Auditor, deps.Feed)

	router := chi.NewRouter()

	router.Use(leakfindermiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", handler.Login)
		r.Get("/session", handler.CurrentUser)
		r.Patch("/session", handler.UpdateUser)
		r.Delete("/session", handler.Logout)

		r.Get("/settings", handler.GetSettings)
		r.Put("/settings", handler.PutSettings)
		r.Get("/onboarding", handler.GetOnboarding)
		r.Put("/onboarding", handler.PutOnboarding)

		r.Get("/resources", handler.ListResources)
		r.Get("/resources/snoozed", handler.ListSnoozedResources)
		r.Get("/resources/{id}", handler.GetResource)
		r.Put("/resources/{id}/tags", handler.UpdateResourceTags)
		r.Post("/resources/{id}/snooze", handler.SnoozeResource)

		r.Put("/leaks/{id}/due-date", handler.UpdateLeakDueDate)
		r.Get("/leaks/due-dates", handler.ListLeakDueDates)

		r.Get("/remediation-bin", handler.GetRemediationBin)
		r.Post("/remediation-bin", handler.ResolveLeak)
		r.Delete("/remediation-bin", handler.ClearRemediationBin)

		r.Post("/audits", handler.RunAudit)
		r.Get("/audits/history", handler.GetAuditHistory)

		r.Get("/notifications", handler.ListNotifications)

		r.Get("/tagging-standards", handler.ListTaggingStandards)
		r.Post("/tagging-standards", handler.AddTaggingStandard)
		r.Put("/tagging-standards", handler.PublishTaggingStandards)
		r.Delete("/tagging-standards/{key}", handler.DeleteTaggingStandard)

		r.Get("/identity", handler.GetIdentity)
		r.Patch("/identity", handler.PatchIdentity)

		r.Get("/billing", handler.GetBilling)
		r.Put("/billing/payment-method", handler.UpdatePaymentMethod)

		r.Get("/autokill", handler.GetAutoKillConfig)
		r.Put("/autokill", handler.PutAutoKillConfig)

		r.Get("/governance", handler.ListGovernancePolicies)
		r.Post("/governance/policies", handler.UploadGovernancePolicy)

		r.Get("/api-keys", handler.ListAPIKeys)

		r.Get("/compliance", handler.GetCompliance)
		r.Post("/compliance/audit", handler.TriggerComplianceAudit)

		r.Put("/subscription", handler.PutSubscription)
		r.Post("/feedback", handler.SubmitFeedback)
		r.Get("/logs", handler.GetActivityLog)
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config.Dependencies)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
