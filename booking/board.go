package booking

import (
	"sync"

	"github.com/hanksha/skillbridge-bff/model"
)

type flight struct {
	id     string
	action Action
}

// Board is one session's cached booking list. Entries are never mutated in
// place: an update swaps in a new *View for that id only, so every other
// entry keeps its identity.
type Board struct {
	role model.Role

	mu       sync.RWMutex
	order    []string
	entries  map[string]*View
	inflight map[flight]struct{}
}

func newBoard(role model.Role, views []*View) *Board {
	b := &Board{
		role:     role,
		order:    make([]string, 0, len(views)),
		entries:  make(map[string]*View, len(views)),
		inflight: map[flight]struct{}{},
	}

	for _, view := range views {
		view.Actions = Offered(role, view.Status)
		if _, exists := b.entries[view.ID]; !exists {
			b.order = append(b.order, view.ID)
		}
		b.entries[view.ID] = view
	}

	return b
}

func (b *Board) Role() model.Role {
	return b.role
}

func (b *Board) List() []*View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	views := make([]*View, 0, len(b.order))

	for _, id := range b.order {
		views = append(views, b.entries[id])
	}

	return views
}

func (b *Board) Get(id string) (*View, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	view, ok := b.entries[id]
	return view, ok
}

// begin marks (id, action) as running. Only the same action on the same
// booking is refused; other actions may race it.
func (b *Board) begin(id string, action Action) (*View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	view, ok := b.entries[id]

	if !ok {
		return nil, ErrBookingNotFound
	}

	key := flight{id: id, action: action}

	if _, running := b.inflight[key]; running {
		return nil, ErrActionInFlight
	}

	b.inflight[key] = struct{}{}

	return view, nil
}

func (b *Board) finish(id string, action Action) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.inflight, flight{id: id, action: action})
}

func (b *Board) replace(id string, mutate func(view *View)) *View {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.entries[id]

	if !ok {
		return nil
	}

	next := *current
	mutate(&next)
	next.Actions = Offered(b.role, next.Status)
	b.entries[id] = &next

	return &next
}

func (b *Board) add(view *View) {
	b.mu.Lock()
	defer b.mu.Unlock()

	view.Actions = Offered(b.role, view.Status)

	if _, exists := b.entries[view.ID]; !exists {
		b.order = append(b.order, view.ID)
	}

	b.entries[view.ID] = view
}
