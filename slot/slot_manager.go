package slot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=slot_manager.go -destination=mocks/slot_manager.go

type SlotAPI interface {
	GetMyProfile(ctx context.Context, creds model.Credentials) (*model.TutorProfile, error)
	GetSlotsByTutor(ctx context.Context, creds model.Credentials, tutorID string) ([]model.Slot, error)
	AddSlots(ctx context.Context, creds model.Credentials, tutorID string, slots []model.SlotInput) ([]model.Slot, error)
	DeleteSlot(ctx context.Context, creds model.Credentials, slotID string) error
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Manager struct {
	api    SlotAPI
	logger *slog.Logger
}

func NewManager(api SlotAPI) *Manager {
	return &Manager{
		api:    api,
		logger: slog.Default().With("component", "slot"),
	}
}

// List returns the tutor's own slots with free slots ahead of booked ones.
// Slots keep their remote order within each group.
func (m *Manager) List(ctx context.Context, creds model.Credentials) ([]model.Slot, error) {
	tutorID, err := m.tutorID(ctx, creds)

	if err != nil {
		return nil, err
	}

	slots, err := m.api.GetSlotsByTutor(ctx, creds, tutorID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}

	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b model.Slot) int {
		switch {
		case a.IsBooked == b.IsBooked:
			return 0
		case a.IsBooked:
			return 1
		default:
			return -1
		}
	})

	if sorted == nil {
		sorted = []model.Slot{}
	}

	return sorted, nil
}

// Available returns the slots of a tutor that can still be booked.
func (m *Manager) Available(ctx context.Context, creds model.Credentials, tutorProfileID string) ([]model.Slot, error) {
	slots, err := m.api.GetSlotsByTutor(ctx, creds, tutorProfileID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots of tutor %v: %w", tutorProfileID, err)
	}

	available := []model.Slot{}

	for _, slot := range slots {
		if !slot.IsBooked {
			available = append(available, slot)
		}
	}

	return available, nil
}

func (m *Manager) Add(ctx context.Context, creds model.Credentials, input model.SlotInput) ([]model.Slot, error) {
	input = model.SlotInput{
		Date:      strings.TrimSpace(input.Date),
		StartTime: strings.TrimSpace(input.StartTime),
		EndTime:   strings.TrimSpace(input.EndTime),
	}

	if err := Validate(input); err != nil {
		return nil, err
	}

	tutorID, err := m.tutorID(ctx, creds)

	if err != nil {
		return nil, err
	}

	created, err := m.api.AddSlots(ctx, creds, tutorID, []model.SlotInput{input})

	if err != nil {
		return nil, fmt.Errorf("failed to add slot: %w", err)
	}

	m.logger.Info("slot added", "tutorId", tutorID, "date", input.Date, "start", input.StartTime)

	return created, nil
}

// Delete removes one of the tutor's free slots. Booked slots are refused
// before the remote API is asked.
func (m *Manager) Delete(ctx context.Context, creds model.Credentials, slotID string) error {
	tutorID, err := m.tutorID(ctx, creds)

	if err != nil {
		return err
	}

	slots, err := m.api.GetSlotsByTutor(ctx, creds, tutorID)

	if err != nil {
		return fmt.Errorf("failed to fetch slots: %w", err)
	}

	index := slices.IndexFunc(slots, func(slot model.Slot) bool { return slot.ID == slotID })

	if index < 0 {
		return ErrSlotNotFound
	}

	if slots[index].IsBooked {
		return ErrSlotBooked
	}

	if err := m.api.DeleteSlot(ctx, creds, slotID); err != nil {
		return fmt.Errorf("failed to delete slot %v: %w", slotID, err)
	}

	m.logger.Info("slot deleted", "tutorId", tutorID, "slotId", slotID)

	return nil
}

func (m *Manager) tutorID(ctx context.Context, creds model.Credentials) (string, error) {
	profile, err := m.api.GetMyProfile(ctx, creds)

	if err != nil {
		return "", fmt.Errorf("failed to resolve tutor profile: %w", err)
	}

	return profile.ID, nil
}

// Validate checks a slot before it is sent anywhere. Overlaps with existing
// slots are left to the remote API.
func Validate(input model.SlotInput) error {
	if len(input.Date) == 0 || len(input.StartTime) == 0 || len(input.EndTime) == 0 {
		return fmt.Errorf("%w: date, start time and end time are required", ErrInvalidSlot)
	}

	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSlot)
	}

	start, err := time.Parse(timeLayout, input.StartTime)

	if err != nil {
		return fmt.Errorf("%w: start time must be HH:mm", ErrInvalidSlot)
	}

	end, err := time.Parse(timeLayout, input.EndTime)

	if err != nil {
		return fmt.Errorf("%w: end time must be HH:mm", ErrInvalidSlot)
	}

	if !start.Before(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidSlot)
	}

	return nil
}
