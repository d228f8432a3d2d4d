// Package edge implements the page-navigation guard that runs in front of the
// frontend. It only checks whether a session cookie is present; it never
// decodes the token, since the edge process does not hold the signing secret.
// The API gate in package auth stays the authority.
package edge

import (
	"net/url"
	"strings"
)

// Class is the protection class of a page path.
type Class int

const (
	ClassNone Class = iota
	ClassPublic
	ClassAdmin
	ClassUser
	ClassAuthEntry
)

func (c Class) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassAdmin:
		return "admin"
	case ClassUser:
		return "user"
	case ClassAuthEntry:
		return "auth_entry"
	default:
		return "none"
	}
}

const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	UserHomePath  = "/user"
	adminPrefix   = "/admin"
	userPrefix    = "/user"
	fromQueryName = "from"
)

// Classify maps a path to exactly one class. /login and /register are
// auth-entry pages, which are also publicly reachable.
func Classify(path string) Class {
	switch {
	case path == LoginPath || path == RegisterPath:
		return ClassAuthEntry
	case path == "/":
		return ClassPublic
	case strings.HasPrefix(path, adminPrefix):
		return ClassAdmin
	case strings.HasPrefix(path, userPrefix):
		return ClassUser
	default:
		return ClassNone
	}
}

// Action is what the guard does with a request.
type Action int

const (
	ActionPass Action = iota
	ActionRedirect
)

// Decision is the outcome of Decide.
type Decision struct {
	Action   Action
	Location string
	Reason   string
}

// Decide computes the guard outcome from the path and cookie presence.
// A present cookie on /login or /register redirects to /user without any
// validation of the cookie value.
func Decide(path string, hasCookie bool) Decision {
	switch Classify(path) {
	case ClassAdmin, ClassUser:
		if !hasCookie {
			return Decision{Action: ActionRedirect, Location: LoginRedirect(path), Reason: "redirect_login"}
		}
	case ClassAuthEntry:
		if hasCookie {
			return Decision{Action: ActionRedirect, Location: UserHomePath, Reason: "redirect_user"}
		}
	}
	return Decision{Action: ActionPass, Reason: "pass"}
}

// LoginRedirect builds /login?from=<path>. Slashes stay readable.
func LoginRedirect(path string) string {
	from := strings.ReplaceAll(url.QueryEscape(path), "%2F", "/")
	return LoginPath + "?" + fromQueryName + "=" + from
}

var excludedPrefixes = []string{"api", "_next/static", "_next/image", "favicon.ico"}

// Excluded reports whether the guard must be skipped: API routes, static
// assets, image optimization and the favicon.
func Excluded(path string) bool {
	trimmed := strings.TrimPrefix(path, "/")
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
