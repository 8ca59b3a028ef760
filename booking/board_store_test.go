package booking

import (
	"testing"
	"time"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/stretchr/testify/require"
)

func TestBoardStoreKeysOnSessionCookie(t *testing.T) {
	store := NewBoardStore(time.Minute, "better-auth.session_token")
	board := newBoard(model.RoleStudent, nil)

	store.Put("better-auth.session_token=abc; theme=dark", board)

	cached, found := store.Get(model.RoleStudent, "theme=light; better-auth.session_token=abc; _ga=1")
	require.True(t, found)
	require.Same(t, board, cached)

	_, found = store.Get(model.RoleStudent, "better-auth.session_token=other; theme=dark")
	require.False(t, found)

	_, found = store.Get(model.RoleTutor, "better-auth.session_token=abc")
	require.False(t, found)

	store.Invalidate("better-auth.session_token=abc; _ga=2")

	_, found = store.Get(model.RoleStudent, "better-auth.session_token=abc; theme=dark")
	require.False(t, found)
}

func TestBoardStoreWithoutCookieName(t *testing.T) {
	store := NewBoardStore(time.Minute, "")
	board := newBoard(model.RoleTutor, nil)

	store.Put("sid=1; theme=dark", board)

	_, found := store.Get(model.RoleTutor, "sid=1; theme=dark")
	require.True(t, found)

	_, found = store.Get(model.RoleTutor, "sid=1; theme=light")
	require.False(t, found)
}
