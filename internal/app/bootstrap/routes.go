// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/dalemusser/agendahub/internal/app/features/admin"
	currentfeature "github.com/dalemusser/agendahub/internal/app/features/current"
	errorsfeature "github.com/dalemusser/agendahub/internal/app/features/errors"
	exportfeature "github.com/dalemusser/agendahub/internal/app/features/export"
	healthfeature "github.com/dalemusser/agendahub/internal/app/features/health"
	historyfeature "github.com/dalemusser/agendahub/internal/app/features/history"
	homefeature "github.com/dalemusser/agendahub/internal/app/features/home"
	itemsfeature "github.com/dalemusser/agendahub/internal/app/features/items"
	submitfeature "github.com/dalemusser/agendahub/internal/app/features/submit"
	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/pinguard"
	"github.com/dalemusser/agendahub/internal/app/system/rollover"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the spreadsheet connection, schema
// checks, and the Startup hook have completed. It builds the stores over the
// two worksheet handles, the pin guard and rollover engine on top of them,
// and mounts a feature router per application area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Stores and the engines built on them. Everything shares the two
	// worksheet handles from DBDeps.
	agenda := agendastore.New(deps.Current)
	archive := archivestore.New(deps.History)
	guard := pinguard.New(agenda, logger)
	engine := rollover.New(deps.Current, deps.History, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SheetConn, logger)
	r.Mount("/healthz", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page
	homeHandler := homefeature.NewHandler(sessionMgr, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// This week's agenda
	currentHandler := currentfeature.NewHandler(agenda, sessionMgr, errLog, logger)
	r.Mount("/current", currentfeature.Routes(currentHandler))

	submitHandler := submitfeature.NewHandler(agenda, sessionMgr, errLog, logger)
	r.Mount("/submit", submitfeature.Routes(submitHandler))

	// Pin-guarded per-row edit and delete
	itemsHandler := itemsfeature.NewHandler(agenda, guard, sessionMgr, errLog, logger)
	r.Mount("/items", itemsfeature.Routes(itemsHandler))

	// Archived batches
	historyHandler := historyfeature.NewHandler(archive, sessionMgr, errLog, logger)
	r.Mount("/history", historyfeature.Routes(historyHandler))

	// CSV downloads
	exportHandler := exportfeature.NewHandler(agenda, archive, logger)
	r.Mount("/export", exportfeature.Routes(exportHandler))

	// Admin gate and the weekly close
	adminHandler := adminfeature.NewHandler(engine, agenda, archive, sessionMgr, errLog, appCfg.AdminPassword, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
