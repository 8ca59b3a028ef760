package profile

import "errors"

var ErrInvalidProfile = errors.New("invalid tutor profile")
