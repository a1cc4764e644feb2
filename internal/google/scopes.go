package google

// DefaultOAuthScopes are the Google OAuth scopes the scheduling server
// requires: reading calendars, managing events, and free/busy queries.
var DefaultOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/calendar.freebusy",
}
