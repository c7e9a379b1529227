// Package htmlsanitize strips unsafe HTML from submitted free text.
//
// Agenda content and notes are typed by department staff and rendered back
// to everyone who opens the weekly status page, so anything script-bearing
// must be removed at submission time. The UGC policy keeps basic formatting
// and drops everything else.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with disallowed HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
