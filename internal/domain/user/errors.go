package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already registered")
	ErrEmployeeLinked      = errors.New("employee already linked to an account")
	ErrInvalidRole         = errors.New("invalid role")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrHRAccessRequired    = errors.New("hr manager or admin access required")
)
