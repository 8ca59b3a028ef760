package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hanksha/skillbridge-bff/apiclient"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway.go

type SessionAPI interface {
	GetSession(ctx context.Context, creds model.Credentials) (*model.SessionInfo, error)
}

type Identity struct {
	UserID string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	Cookie string     `json:"-"`
}

func (i Identity) Authenticated() bool {
	return len(i.UserID) != 0
}

func (i Identity) Credentials() model.Credentials {
	return model.Credentials{Cookie: i.Cookie, UserID: i.UserID, Role: i.Role}
}

type Gateway struct {
	api    SessionAPI
	logger *slog.Logger
}

func NewGateway(api SessionAPI) *Gateway {
	return &Gateway{
		api:    api,
		logger: slog.Default().With("component", "session"),
	}
}

// Resolve looks the cookie header up with the auth service. Any failure
// yields an unauthenticated identity.
func (g *Gateway) Resolve(ctx context.Context, cookie string) Identity {
	if len(cookie) == 0 {
		return Identity{}
	}

	info, err := g.api.GetSession(ctx, model.Credentials{Cookie: cookie})

	if err != nil {
		if !errors.Is(err, apiclient.ErrNoSession) {
			g.logger.Warn("session resolution failed", "err", err)
		}
		return Identity{}
	}

	if info == nil || info.User == nil || len(info.User.ID) == 0 {
		return Identity{}
	}

	return Identity{
		UserID: info.User.ID,
		Name:   info.User.Name,
		Email:  info.User.Email,
		Role:   info.User.Role,
		Cookie: cookie,
	}
}
