package model_test

import (
	"testing"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/stretchr/testify/assert"
)

func TestSessionKey(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"picks the session cookie", "theme=dark; better-auth.session_token=abc; _ga=1", "better-auth.session_token", "abc"},
		{"missing cookie keeps header", "theme=dark", "better-auth.session_token", "theme=dark"},
		{"empty value keeps header", "better-auth.session_token=", "better-auth.session_token", "better-auth.session_token="},
		{"no name keeps header", "sid=1; theme=dark", "", "sid=1; theme=dark"},
		{"empty header", "", "better-auth.session_token", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, model.SessionKey(test.header, test.cookie))
		})
	}
}
