// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, and so on); AppConfig is everything specific to AgendaHub:
// which spreadsheet backs the agenda, how to authenticate to it, and the
// session and admin settings.
type AppConfig struct {
	// Google Sheets backing store
	SpreadsheetID   string // ID of the spreadsheet holding the two worksheets
	CredentialsJSON string // inline service-account JSON (takes precedence)
	CredentialsFile string // path to a service-account JSON key file
	CurrentSheet    string // worksheet title for this week's agenda
	HistorySheet    string // worksheet title for the archive

	// Admin gate for the weekly close
	AdminPassword string // shared plain-text password, compared exactly

	// Session management
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name for sessions
	SessionDomain string // cookie domain (blank means current host)
}
