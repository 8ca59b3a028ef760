package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/skillbridge-bff/model"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service.go

type BookingAPI interface {
	GetMyBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error)
	GetTutorBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error)
	CreateBooking(ctx context.Context, creds model.Credentials, booking model.BookingRequest) (model.Booking, error)
	UpdateBookingStatus(ctx context.Context, creds model.Credentials, id string, status model.BookingStatus) error
	CompleteBooking(ctx context.Context, creds model.Credentials, id string) error
	GetSlotsByTutor(ctx context.Context, creds model.Credentials, tutorID string) ([]model.Slot, error)
	GetReviewByBooking(ctx context.Context, creds model.Credentials, bookingID string) (*model.Review, error)
	CreateReview(ctx context.Context, creds model.Credentials, request model.ReviewRequest) (model.Review, error)
}

type Journal interface {
	Record(ctx context.Context, activity Activity) error
}

// lookupLimit bounds the slot and review lookups a single load runs at once.
const lookupLimit = 8

const tempReviewPrefix = "temp-"

type Service struct {
	api     BookingAPI
	journal Journal
	boards  *BoardStore
	logger  *slog.Logger
}

func NewService(api BookingAPI, journal Journal, boards *BoardStore) *Service {
	return &Service{
		api:     api,
		journal: journal,
		boards:  boards,
		logger:  slog.Default().With("component", "booking"),
	}
}

func (s *Service) StudentBookings(ctx context.Context, creds model.Credentials, refresh bool) ([]*View, error) {
	board, err := s.board(ctx, creds, model.RoleStudent, refresh)

	if err != nil {
		return nil, err
	}

	return board.List(), nil
}

func (s *Service) TutorBookings(ctx context.Context, creds model.Credentials, refresh bool) ([]*View, error) {
	board, err := s.board(ctx, creds, model.RoleTutor, refresh)

	if err != nil {
		return nil, err
	}

	return board.List(), nil
}

// UpdateStatus moves one of the student's bookings to target. The board only
// changes once the remote API has accepted the change.
func (s *Service) UpdateStatus(ctx context.Context, creds model.Credentials, id string, target model.BookingStatus) (*View, error) {
	board, err := s.board(ctx, creds, model.RoleStudent, false)

	if err != nil {
		return nil, err
	}

	current, ok := board.Get(id)

	if !ok {
		return nil, ErrBookingNotFound
	}

	action, err := ActionFor(model.RoleStudent, current.Status, target)

	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, creds, board, id, action)
}

func (s *Service) Complete(ctx context.Context, creds model.Credentials, id string) (*View, error) {
	board, err := s.board(ctx, creds, model.RoleTutor, false)

	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, creds, board, id, ActionComplete)
}

func (s *Service) Reschedule(ctx context.Context, creds model.Credentials, id string) (*View, error) {
	board, err := s.board(ctx, creds, model.RoleTutor, false)

	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, creds, board, id, ActionReschedule)
}

func (s *Service) SubmitReview(ctx context.Context, creds model.Credentials, id string, rating int, comment string) (*View, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReview)
	}

	comment = strings.TrimSpace(comment)

	if len(comment) == 0 {
		return nil, fmt.Errorf("%w: comment cannot be empty", ErrInvalidReview)
	}

	board, err := s.board(ctx, creds, model.RoleStudent, false)

	if err != nil {
		return nil, err
	}

	current, ok := board.Get(id)

	if !ok {
		return nil, ErrBookingNotFound
	}

	if current.Status != model.StatusCompleted {
		return nil, fmt.Errorf("%w: only completed bookings can be reviewed", ErrInvalidReview)
	}

	if current.Review != nil {
		return nil, ErrAlreadyReviewed
	}

	request := model.ReviewRequest{
		Rating:    rating,
		Comment:   comment,
		BookingID: current.ID,
		TutorID:   current.TutorID,
		StudentID: current.StudentID,
	}

	if _, err := s.api.CreateReview(ctx, creds, request); err != nil {
		return nil, fmt.Errorf("failed to create review for booking %v: %w", id, err)
	}

	review := model.Review{
		ID:        tempReviewPrefix + uuid.NewString(),
		Rating:    request.Rating,
		Comment:   request.Comment,
		BookingID: request.BookingID,
		TutorID:   request.TutorID,
		StudentID: request.StudentID,
	}

	return board.replace(id, func(view *View) { view.Review = &review }), nil
}

// BookSlot books one of a tutor's free slots and adds the booking to the
// student's board if one is loaded.
func (s *Service) BookSlot(ctx context.Context, creds model.Credentials, tutorProfileID, slotID string) (*View, error) {
	slots, err := s.api.GetSlotsByTutor(ctx, creds, tutorProfileID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots of tutor %v: %w", tutorProfileID, err)
	}

	var slot *model.Slot

	for i := range slots {
		if slots[i].ID == slotID {
			slot = &slots[i]
			break
		}
	}

	if slot == nil || slot.IsBooked {
		return nil, ErrSlotUnavailable
	}

	request := model.BookingRequest{
		TutorProfileID: tutorProfileID,
		Status:         model.StatusConfirmed,
		SlotID:         slot.ID,
	}

	if start, err := time.Parse("2006-01-02 15:04", slot.Date+" "+slot.StartTime); err == nil {
		request.DateTime = start.Format(time.RFC3339)
	} else {
		request.DateTime = slot.Date
	}

	created, err := s.api.CreateBooking(ctx, creds, request)

	if err != nil {
		return nil, fmt.Errorf("failed to book slot %v: %w", slotID, err)
	}

	booked := *slot
	booked.IsBooked = true

	view := &View{Booking: created, Slot: &booked}

	if board, found := s.boards.Get(model.RoleStudent, creds.Cookie); found {
		board.add(view)
	} else {
		view.Actions = Offered(model.RoleStudent, view.Status)
	}

	return view, nil
}

func (s *Service) dispatch(ctx context.Context, creds model.Credentials, board *Board, id string, action Action) (*View, error) {
	if !Allowed(board.Role(), action) {
		return nil, fmt.Errorf("%w: %s cannot %s bookings", ErrInvalidTransition, board.Role(), action)
	}

	current, err := board.begin(id, action)

	if err != nil {
		return nil, err
	}

	defer board.finish(id, action)

	to, err := Next(current.Status, action)

	if err != nil {
		return nil, err
	}

	if action == ActionComplete {
		err = s.api.CompleteBooking(ctx, creds, id)
	} else {
		err = s.api.UpdateBookingStatus(ctx, creds, id, to)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to %s booking %v: %w", action, id, err)
	}

	updated := board.replace(id, func(view *View) { view.Status = to })

	s.record(ctx, creds, id, action, current.Status, to)

	return updated, nil
}

func (s *Service) record(ctx context.Context, creds model.Credentials, id string, action Action, from, to model.BookingStatus) {
	err := s.journal.Record(ctx, Activity{
		ID:        uuid.NewString(),
		BookingID: id,
		ActorID:   creds.UserID,
		ActorRole: string(creds.Role),
		Action:    string(action),
		From:      string(from),
		To:        string(to),
		CreatedAt: time.Now().UTC(),
	})

	if err != nil {
		s.logger.Warn("failed to journal booking activity", "bookingId", id, "action", action, "err", err)
	}
}

func (s *Service) board(ctx context.Context, creds model.Credentials, role model.Role, refresh bool) (*Board, error) {
	if !refresh {
		if board, found := s.boards.Get(role, creds.Cookie); found {
			return board, nil
		}
	}

	var board *Board
	var err error

	switch role {
	case model.RoleStudent:
		board, err = s.loadStudent(ctx, creds)
	case model.RoleTutor:
		board, err = s.loadTutor(ctx, creds)
	default:
		return nil, fmt.Errorf("no booking board for role %q", role)
	}

	if err != nil {
		return nil, err
	}

	s.boards.Put(creds.Cookie, board)

	return board, nil
}

// loadStudent fetches the student's bookings and decorates them. Slot and
// review lookups that fail leave the decoration nil instead of failing the load.
func (s *Service) loadStudent(ctx context.Context, creds model.Credentials) (*Board, error) {
	bookings, err := s.api.GetMyBookings(ctx, creds)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch student bookings: %w", err)
	}

	var mu sync.Mutex
	slots := map[string]model.Slot{}
	reviews := make([]*model.Review, len(bookings))
	seen := map[string]bool{}

	var g errgroup.Group
	g.SetLimit(lookupLimit)

	for _, b := range bookings {
		if len(b.TutorID) == 0 || seen[b.TutorID] {
			continue
		}
		seen[b.TutorID] = true

		tutorID := b.TutorID
		g.Go(func() error {
			tutorSlots, err := s.api.GetSlotsByTutor(ctx, creds, tutorID)

			if err != nil {
				s.logger.Warn("failed to load tutor slots", "tutorId", tutorID, "err", err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()

			for _, slot := range tutorSlots {
				slots[slot.ID] = slot
			}

			return nil
		})
	}

	for i, b := range bookings {
		if b.Status != model.StatusCompleted {
			continue
		}

		g.Go(func() error {
			review, err := s.api.GetReviewByBooking(ctx, creds, b.ID)

			if err != nil {
				s.logger.Warn("failed to load booking review", "bookingId", b.ID, "err", err)
				return nil
			}

			reviews[i] = review

			return nil
		})
	}

	// The lookups never fail the group.
	_ = g.Wait()

	views := make([]*View, 0, len(bookings))

	for i, b := range bookings {
		view := &View{Booking: b, Review: reviews[i]}

		if slot, ok := slots[b.SlotID]; ok && len(b.SlotID) != 0 {
			view.Slot = &slot
		}

		views = append(views, view)
	}

	return newBoard(model.RoleStudent, views), nil
}

func (s *Service) loadTutor(ctx context.Context, creds model.Credentials) (*Board, error) {
	bookings, err := s.api.GetTutorBookings(ctx, creds)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor bookings: %w", err)
	}

	views := make([]*View, 0, len(bookings))

	for _, b := range bookings {
		views = append(views, &View{Booking: b, Slot: b.SlotInfo})
	}

	return newBoard(model.RoleTutor, views), nil
}

// IsConflict reports errors caused by the booking's current state rather
// than by the request or the remote API.
func IsConflict(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrActionInFlight) ||
		errors.Is(err, ErrAlreadyReviewed) ||
		errors.Is(err, ErrSlotUnavailable)
}
