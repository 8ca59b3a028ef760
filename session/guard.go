package session

import (
	"strings"

	"github.com/hanksha/skillbridge-bff/model"
)

const (
	LoginPath  = "/login"
	LogoutPath = "/logout"
)

var dashboards = map[model.Role]string{
	model.RoleStudent: "/student-dashboard",
	model.RoleTutor:   "/tutor-dashboard",
	model.RoleAdmin:   "/admin-dashboard",
}

type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Logout
)

type Decision struct {
	Outcome  Outcome
	Location string
}

// Decide classifies a page request. Only the three dashboard trees and
// /logout are guarded; everything else, /login included, passes through.
func Decide(path string, identity Identity) Decision {
	if path == LogoutPath {
		return Decision{Outcome: Logout, Location: LoginPath}
	}

	if !Guarded(path) {
		return Decision{Outcome: Allow}
	}

	if !identity.Authenticated() {
		return Decision{Outcome: Redirect, Location: LoginPath}
	}

	home, known := dashboards[identity.Role]

	if !known {
		return Decision{Outcome: Redirect, Location: LoginPath}
	}

	if !under(path, home) {
		return Decision{Outcome: Redirect, Location: home}
	}

	return Decision{Outcome: Allow}
}

func Guarded(path string) bool {
	for _, prefix := range dashboards {
		if under(path, prefix) {
			return true
		}
	}

	return false
}

// Dashboard returns the landing path of a role, or /login for unknown roles.
func Dashboard(role model.Role) string {
	if home, ok := dashboards[role]; ok {
		return home
	}

	return LoginPath
}

func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
