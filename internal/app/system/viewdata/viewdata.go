// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// SiteName appears in the header of every page.
const SiteName = "KIWU 스마트회의"

// BaseVM contains the common fields every page template expects. Embed it
// in feature-specific view models:
//
//	type statusPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string
	Title    string
	Today    string // reporting reference date shown under the header

	// IsAdmin is true when this session passed the shared-password check.
	IsAdmin bool

	BackURL     string
	CurrentPath string
}

// NewBaseVM populates the common fields from the request. Pass sm=nil for
// pages rendered before the session manager exists (error pages in tests).
func NewBaseVM(r *http.Request, sm *auth.SessionManager, title, backDefault string) BaseVM {
	isAdmin := false
	if sm != nil {
		isAdmin = sm.IsAdmin(r)
	}
	return BaseVM{
		SiteName:    SiteName,
		Title:       title,
		Today:       time.Now().Format("2006년 01월 02일"),
		IsAdmin:     isAdmin,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
