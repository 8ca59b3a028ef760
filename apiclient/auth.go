package apiclient

import (
	"context"
	"net/http"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/patrickmn/go-cache"
)

const sessionCachePrefix = "session:"

// GetSession resolves the caller's session against the auth service. Only
// sessions carrying a user are cached.
func (c *Client) GetSession(ctx context.Context, creds model.Credentials) (*model.SessionInfo, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	cached, found := c.cache.Get(c.cacheKey(sessionCachePrefix, creds.Cookie))

	if found {
		return cached.(*model.SessionInfo), nil
	}

	sessionURL, err := joinURL(c.authURL, "get-session")

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, sessionURL, creds, nil)

	if err != nil {
		return nil, err
	}

	info, err := decodeOne[model.SessionInfo](body)

	if err != nil {
		return nil, err
	}

	if info == nil || info.User == nil {
		return nil, ErrNoSession
	}

	c.cache.Set(c.cacheKey(sessionCachePrefix, creds.Cookie), info, cache.DefaultExpiration)

	return info, nil
}

// Invalidate drops everything cached for the given cookie.
func (c *Client) Invalidate(cookie string) {
	c.cache.Delete(c.cacheKey(sessionCachePrefix, cookie))
	c.cache.Delete(c.cacheKey(profileCachePrefix, cookie))
}
