package model

import "net/http"

// Credentials is the caller's session context. It is passed explicitly into
// every remote call instead of being read from the incoming request.
type Credentials struct {
	Cookie string
	UserID string
	Role   Role
}

func (c Credentials) Empty() bool {
	return len(c.Cookie) == 0
}

// SessionKey picks the value of the named session cookie out of a Cookie
// header, so that unrelated cookies do not change the key. It falls back to
// the whole header when the cookie is absent or name is empty.
func SessionKey(header, name string) string {
	if len(name) == 0 {
		return header
	}

	req := &http.Request{Header: http.Header{"Cookie": {header}}}
	cookie, err := req.Cookie(name)

	if err != nil || len(cookie.Value) == 0 {
		return header
	}

	return cookie.Value
}

type SessionInfo struct {
	User *User `json:"user"`
}
