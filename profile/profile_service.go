package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hanksha/skillbridge-bff/apiclient"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=profile_service.go -destination=mocks/profile_service.go

type ProfileAPI interface {
	GetMyProfile(ctx context.Context, creds model.Credentials) (*model.TutorProfile, error)
	UpsertTutorProfile(ctx context.Context, creds model.Credentials, input model.TutorProfileInput, exists bool) (*model.TutorProfile, error)
}

type Service struct {
	api    ProfileAPI
	logger *slog.Logger
}

func NewService(api ProfileAPI) *Service {
	return &Service{
		api:    api,
		logger: slog.Default().With("component", "profile"),
	}
}

func (s *Service) Get(ctx context.Context, creds model.Credentials) (*model.TutorProfile, error) {
	profile, err := s.api.GetMyProfile(ctx, creds)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}

	return profile, nil
}

// Save creates the caller's profile when there is none yet and updates it
// otherwise. created reports which of the two happened.
func (s *Service) Save(ctx context.Context, creds model.Credentials, input model.TutorProfileInput) (profile *model.TutorProfile, created bool, err error) {
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.Bio = strings.TrimSpace(input.Bio)
	input.Experience = strings.TrimSpace(input.Experience)

	if err := Validate(input); err != nil {
		return nil, false, err
	}

	current, err := s.api.GetMyProfile(ctx, creds)

	switch {
	case errors.Is(err, apiclient.ErrNotFound):
		current = nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}

	exists := current != nil

	saved, err := s.api.UpsertTutorProfile(ctx, creds, input, exists)

	if err != nil {
		return nil, false, fmt.Errorf("failed to save tutor profile: %w", err)
	}

	s.logger.Info("saved tutor profile", "user", creds.UserID, "created", !exists)

	if saved == nil {
		saved, err = s.api.GetMyProfile(ctx, creds)

		if err != nil {
			return nil, false, fmt.Errorf("failed to fetch saved tutor profile: %w", err)
		}
	}

	return saved, !exists, nil
}

func Validate(input model.TutorProfileInput) error {
	if len(strings.TrimSpace(input.Bio)) == 0 {
		return fmt.Errorf("%w: bio is required", ErrInvalidProfile)
	}

	if len(strings.TrimSpace(input.CategoryID)) == 0 {
		return fmt.Errorf("%w: category is required", ErrInvalidProfile)
	}

	if input.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProfile)
	}

	return nil
}
