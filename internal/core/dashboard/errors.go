package dashboard

import "errors"

var (
	ErrForbidden       = errors.New("dashboard: role may not open this view")
	ErrProfileNotFound = errors.New("dashboard: employee data not found")
)
