package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/api"
	mock_api "github.com/hanksha/skillbridge-bff/api/mocks"
	"github.com/hanksha/skillbridge-bff/model"
	"github.com/hanksha/skillbridge-bff/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sessionCookie = "better-auth.session_token=s"

func setupSessionRouter(t *testing.T, frontend *url.URL) (*gin.Engine, *gomock.Controller, *mock_api.MockSessionResolver, *mock_api.MockSessionCache) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	resolver := mock_api.NewMockSessionResolver(ctrl)
	cache := mock_api.NewMockSessionCache(ctrl)
	handler := api.NewSessionHandler(resolver, "better-auth.session_token", frontend, cache)
	handler.Register(&router.RouterGroup)
	router.NoRoute(handler.Gate)

	student := router.Group("/api/student", api.SessionAuth(resolver), api.RequireRole(model.RoleStudent))
	student.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return router, ctrl, resolver, cache
}

func TestLogout(t *testing.T) {
	router, ctrl, _, cache := setupSessionRouter(t, nil)
	defer ctrl.Finish()

	cache.EXPECT().Invalidate(sessionCookie).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/logout", nil)
	req.Header.Set("Cookie", sessionCookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "better-auth.session_token=;")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestGate(t *testing.T) {
	t.Run("student sent home from tutor dashboard", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(studentIdentity).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tutor-dashboard/x", nil)
		req.Header.Set("Cookie", sessionCookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, 302, w.Code)
		assert.Equal(t, "/student-dashboard", w.Header().Get("Location"))
	})

	t.Run("no session", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), "").Return(session.Identity{}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin-dashboard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 302, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("login page is not resolved", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/login", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("allowed page is proxied", func(t *testing.T) {
		ui := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("page " + r.URL.Path))
		}))
		defer ui.Close()

		frontend, err := url.Parse(ui.URL)
		require.Nil(t, err)

		router, ctrl, resolver, _ := setupSessionRouter(t, frontend)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(studentIdentity).Times(1)

		srv := httptest.NewServer(router)
		defer srv.Close()

		req, err := http.NewRequest("GET", srv.URL+"/student-dashboard/bookings", nil)
		require.Nil(t, err)
		req.Header.Set("Cookie", sessionCookie)

		client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}}
		res, err := client.Do(req)
		require.Nil(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.Nil(t, err)

		assert.Equal(t, 200, res.StatusCode)
		assert.Equal(t, "page /student-dashboard/bookings", string(body))
	})
}

func TestSessionAuth(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/student/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("expired session", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(session.Identity{}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/student/ping", nil)
		req.Header.Set("Cookie", sessionCookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})

	t.Run("wrong role", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(tutorIdentity).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/student/ping", nil)
		req.Header.Set("Cookie", sessionCookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("allowed", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(studentIdentity).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/student/ping", nil)
		req.Header.Set("Cookie", sessionCookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("current session", func(t *testing.T) {
		router, ctrl, resolver, _ := setupSessionRouter(t, nil)
		defer ctrl.Finish()

		resolver.EXPECT().Resolve(gomock.Any(), sessionCookie).Return(studentIdentity).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/session", nil)
		req.Header.Set("Cookie", sessionCookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"id":"s1","name":"Sam","email":"","role":"STUDENT"}`, w.Body.String())
	})
}
