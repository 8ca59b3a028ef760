package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/skillbridge-bff/booking"
	"github.com/hanksha/skillbridge-bff/model"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=admin_service.go -destination=mocks/admin_service.go

type AdminAPI interface {
	GetAllUsers(ctx context.Context, creds model.Credentials) ([]model.User, error)
	UpdateUserStatus(ctx context.Context, creds model.Credentials, userID string, status model.UserStatus) error
	GetAllStudentProfiles(ctx context.Context, creds model.Credentials) ([]model.StudentProfile, error)
	GetAllBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, creds model.Credentials, id string, status model.BookingStatus) error
	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, creds model.Credentials, name string) (model.Category, error)
	GetAllTutorProfiles(ctx context.Context) ([]model.TutorProfile, error)
}

type Journal interface {
	Record(ctx context.Context, activity booking.Activity) error
	Recent(ctx context.Context, limit int) ([]booking.Activity, error)
}

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type Service struct {
	api     AdminAPI
	journal Journal
	logger  *slog.Logger
}

func NewService(api AdminAPI, journal Journal) *Service {
	return &Service{
		api:     api,
		journal: journal,
		logger:  slog.Default().With("component", "admin"),
	}
}

// Statistics fetches users, bookings, categories and tutors concurrently.
// A failed fetch counts as an empty list.
func (s *Service) Statistics(ctx context.Context, creds model.Credentials) Statistics {
	var (
		users      []model.User
		bookings   []model.Booking
		categories []model.Category
		tutors     []model.TutorProfile
	)

	var g errgroup.Group

	g.Go(func() error {
		users = orEmpty(s.logger, "users", func() ([]model.User, error) { return s.api.GetAllUsers(ctx, creds) })
		return nil
	})
	g.Go(func() error {
		bookings = orEmpty(s.logger, "bookings", func() ([]model.Booking, error) { return s.api.GetAllBookings(ctx, creds) })
		return nil
	})
	g.Go(func() error {
		categories = orEmpty(s.logger, "categories", func() ([]model.Category, error) { return s.api.GetCategories(ctx) })
		return nil
	})
	g.Go(func() error {
		tutors = orEmpty(s.logger, "tutors", func() ([]model.TutorProfile, error) { return s.api.GetAllTutorProfiles(ctx) })
		return nil
	})

	_ = g.Wait()

	return summarize(users, bookings, categories, tutors)
}

func (s *Service) Users(ctx context.Context, creds model.Credentials) ([]model.User, error) {
	return s.api.GetAllUsers(ctx, creds)
}

func (s *Service) SetUserStatus(ctx context.Context, creds model.Credentials, userID string, status model.UserStatus) error {
	if !status.Known() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.api.UpdateUserStatus(ctx, creds, userID, status); err != nil {
		return fmt.Errorf("failed to update status of user %v: %w", userID, err)
	}

	s.logger.Info("user status changed", "userId", userID, "status", status, "by", creds.UserID)

	return nil
}

func (s *Service) Students(ctx context.Context, creds model.Credentials) ([]model.StudentProfile, error) {
	return s.api.GetAllStudentProfiles(ctx, creds)
}

func (s *Service) Bookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error) {
	return s.api.GetAllBookings(ctx, creds)
}

// SetBookingStatus overrides a booking's status. Admins are not bound by the
// transition table but the status must be one the API knows.
func (s *Service) SetBookingStatus(ctx context.Context, creds model.Credentials, id string, status model.BookingStatus) (model.Booking, error) {
	if !status.Known() {
		return model.Booking{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	bookings, err := s.api.GetAllBookings(ctx, creds)

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	var current *model.Booking

	for i := range bookings {
		if bookings[i].ID == id {
			current = &bookings[i]
			break
		}
	}

	if current == nil {
		return model.Booking{}, booking.ErrBookingNotFound
	}

	if err := s.api.UpdateBookingStatus(ctx, creds, id, status); err != nil {
		return model.Booking{}, fmt.Errorf("failed to update booking %v: %w", id, err)
	}

	from := current.Status
	updated := *current
	updated.Status = status

	err = s.journal.Record(ctx, booking.Activity{
		ID:        uuid.NewString(),
		BookingID: id,
		ActorID:   creds.UserID,
		ActorRole: string(creds.Role),
		Action:    "override",
		From:      string(from),
		To:        string(status),
		CreatedAt: time.Now().UTC(),
	})

	if err != nil {
		s.logger.Warn("failed to journal booking override", "bookingId", id, "err", err)
	}

	return updated, nil
}

func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	return s.api.GetCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, creds model.Credentials, name string) (model.Category, error) {
	name = strings.TrimSpace(name)

	if len(name) == 0 {
		return model.Category{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidCategory)
	}

	return s.api.CreateCategory(ctx, creds, name)
}

// Activity returns the newest journal entries first. Out of range limits fall
// back to the default.
func (s *Service) Activity(ctx context.Context, limit int) ([]booking.Activity, error) {
	if limit <= 0 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	return s.journal.Recent(ctx, limit)
}

func orEmpty[T any](logger *slog.Logger, name string, fetch func() ([]T, error)) []T {
	items, err := fetch()

	if err != nil {
		logger.Warn("statistics source unavailable", "source", name, "err", err)
		return []T{}
	}

	if items == nil {
		return []T{}
	}

	return items
}
