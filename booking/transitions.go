package booking

import (
	"fmt"
	"slices"

	"github.com/hanksha/skillbridge-bff/model"
)

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionAttend     Action = "attend"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"
)

var transitions = map[model.BookingStatus]map[Action]model.BookingStatus{
	model.StatusPending: {
		ActionConfirm: model.StatusConfirmed,
		ActionCancel:  model.StatusCancelled,
	},
	model.StatusConfirmed: {
		ActionAttend:     model.StatusAttended,
		ActionCancel:     model.StatusCancelled,
		ActionReschedule: model.StatusRescheduled,
	},
	model.StatusAttended: {
		ActionComplete: model.StatusCompleted,
	},
}

// Order matters: it is the order actions are offered in.
var roleActions = map[model.Role][]Action{
	model.RoleStudent: {ActionAttend, ActionCancel},
	model.RoleTutor:   {ActionComplete, ActionReschedule},
	model.RoleAdmin:   {ActionConfirm, ActionAttend, ActionComplete, ActionReschedule, ActionCancel},
}

// Next returns the status an action leads to from the given status.
func Next(from model.BookingStatus, action Action) (model.BookingStatus, error) {
	to, ok := transitions[from][action]

	if !ok {
		return "", fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, action, from)
	}

	return to, nil
}

func Allowed(role model.Role, action Action) bool {
	return slices.Contains(roleActions[role], action)
}

// Offered lists the actions a role can take on a booking in the given status.
// It never returns nil so that views always serialize an array.
func Offered(role model.Role, status model.BookingStatus) []Action {
	offered := []Action{}

	for _, action := range roleActions[role] {
		if _, ok := transitions[status][action]; ok {
			offered = append(offered, action)
		}
	}

	return offered
}

// ActionFor finds the action that takes a booking of the given role from one
// status to another.
func ActionFor(role model.Role, from, to model.BookingStatus) (Action, error) {
	for _, action := range roleActions[role] {
		if transitions[from][action] == to {
			return action, nil
		}
	}

	return "", fmt.Errorf("%w: %s cannot move a booking from %s to %s", ErrInvalidTransition, role, from, to)
}
