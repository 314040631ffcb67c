package realtime

import "harvest/internal/errors"

var (
	errAuthRequired = errors.New("first frame must be an auth event")
	errAuthInvalid  = errors.New("invalid credentials")
)
