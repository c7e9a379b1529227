// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for AgendaHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: spreadsheet_id, admin_password, etc.
//   - Environment variables: AGENDAHUB_SPREADSHEET_ID, AGENDAHUB_ADMIN_PASSWORD, etc.
//   - Command-line flags: --spreadsheet_id, --admin_password, etc.
var appConfigKeys = []config.AppKey{
	{Name: "spreadsheet_id", Default: "", Desc: "Google Sheets spreadsheet ID backing the agenda"},
	{Name: "credentials_json", Default: "", Desc: "Inline service-account JSON (takes precedence over the key file)"},
	{Name: "credentials_file", Default: "service_account.json", Desc: "Path to the service-account JSON key file"},
	{Name: "current_sheet", Default: "Current", Desc: "Worksheet title for this week's agenda"},
	{Name: "history_sheet", Default: "History", Desc: "Worksheet title for the archive"},

	{Name: "admin_password", Default: "1234", Desc: "Shared admin password for the weekly close (change it)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "agendahub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before the spreadsheet connection or handlers
// are built. Merging precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "AGENDAHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SpreadsheetID:   appValues.String("spreadsheet_id"),
		CredentialsJSON: appValues.String("credentials_json"),
		CredentialsFile: appValues.String("credentials_file"),
		CurrentSheet:    appValues.String("current_sheet"),
		HistorySheet:    appValues.String("history_sheet"),

		AdminPassword: appValues.String("admin_password"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// AgendaHub cannot run without a spreadsheet to talk to, so the ID and at
// least one credential source are required before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required (set AGENDAHUB_SPREADSHEET_ID)")
	}
	if appCfg.CredentialsJSON == "" && appCfg.CredentialsFile == "" {
		return fmt.Errorf("either credentials_json or credentials_file must be set")
	}
	if appCfg.CurrentSheet == "" || appCfg.HistorySheet == "" {
		return fmt.Errorf("current_sheet and history_sheet must both be named")
	}
	if appCfg.CurrentSheet == appCfg.HistorySheet {
		return fmt.Errorf("current_sheet and history_sheet must be different worksheets")
	}

	if appCfg.AdminPassword == "1234" && coreCfg.Env == "prod" {
		logger.Warn("admin_password is still the default; change it for production")
	}

	return nil
}
