package booking

import (
	"time"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/patrickmn/go-cache"
)

// BoardStore keeps boards per session and role. Reading a board renews its
// expiry.
type BoardStore struct {
	cache      *cache.Cache
	cookieName string
}

// NewBoardStore keys boards on the value of the cookie named cookieName,
// or on the whole Cookie header when cookieName is empty.
func NewBoardStore(ttl time.Duration, cookieName string) *BoardStore {
	return &BoardStore{cache: cache.New(ttl, 2*ttl), cookieName: cookieName}
}

func (s *BoardStore) Get(role model.Role, cookie string) (*Board, bool) {
	key := s.boardKey(role, cookie)
	cached, found := s.cache.Get(key)

	if !found {
		return nil, false
	}

	board := cached.(*Board)
	s.cache.Set(key, board, cache.DefaultExpiration)

	return board, true
}

func (s *BoardStore) Put(cookie string, board *Board) {
	s.cache.Set(s.boardKey(board.Role(), cookie), board, cache.DefaultExpiration)
}

// Invalidate forgets every board of the session.
func (s *BoardStore) Invalidate(cookie string) {
	for role := range roleActions {
		s.cache.Delete(s.boardKey(role, cookie))
	}
}

func (s *BoardStore) boardKey(role model.Role, cookie string) string {
	return string(role) + ":" + model.SessionKey(cookie, s.cookieName)
}
