package api

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/session"
)

//go:generate mockgen -source=session_handler.go -destination=mocks/session_handler.go

type SessionCache interface {
	Invalidate(cookie string)
}

// SessionHandler owns the page side of the BFF: the logout route and the
// dashboard gate in front of the UI server.
type SessionHandler struct {
	resolver   SessionResolver
	caches     []SessionCache
	cookieName string
	frontend   http.Handler
	logger     *slog.Logger
}

// NewSessionHandler builds the handler. When frontend is nil allowed pages
// answer 404 instead of being proxied.
func NewSessionHandler(resolver SessionResolver, cookieName string, frontend *url.URL, caches ...SessionCache) *SessionHandler {
	h := &SessionHandler{
		resolver:   resolver,
		caches:     caches,
		cookieName: cookieName,
		logger:     slog.Default().With("component", "session"),
	}

	if frontend != nil {
		h.frontend = httputil.NewSingleHostReverseProxy(frontend)
	}

	return h
}

func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	rg.GET(session.LogoutPath, h.Logout)
	rg.GET("/api/session", SessionAuth(h.resolver), h.Current)
}

func (h *SessionHandler) Current(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, c.MustGet(identityKey))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	cookie := c.GetHeader("Cookie")

	if len(cookie) != 0 {
		for _, cache := range h.caches {
			cache.Invalidate(cookie)
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, session.LoginPath)
}

// Gate handles every request no API route matched.
func (h *SessionHandler) Gate(c *gin.Context) {
	path := c.Request.URL.Path

	var identity session.Identity

	if session.Guarded(path) {
		identity = h.resolver.Resolve(c.Request.Context(), c.GetHeader("Cookie"))
	}

	decision := session.Decide(path, identity)

	switch decision.Outcome {
	case session.Logout:
		h.Logout(c)
		return
	case session.Redirect:
		h.logger.Debug("page redirected", "path", path, "location", decision.Location, "role", identity.Role)
		c.Redirect(http.StatusFound, decision.Location)
		return
	}

	if h.frontend == nil || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.frontend.ServeHTTP(c.Writer, c.Request)
}
