package employee

import "errors"

var (
	ErrInvalidUsername    = errors.New("employee: invalid username")
	ErrInvalidPageSize    = errors.New("employee: invalid page size")
	ErrInvalidPageToken   = errors.New("employee: invalid page token")
	ErrEmployeeNotFound   = errors.New("employee: not found")
	ErrDuplicateItem      = errors.New("employee: duplicate learning path item")
	ErrInvalidItemType    = errors.New("employee: invalid learning path item type")
	ErrInvalidItemStatus  = errors.New("employee: invalid learning path item status")
	ErrProgressOutOfRange = errors.New("employee: progress out of range")
	ErrStatusMismatch     = errors.New("employee: status contradicts progress")
	ErrUnknownPrereq      = errors.New("employee: unknown prerequisite")
	ErrPrereqCycle        = errors.New("employee: prerequisite cycle")
	ErrScoreOutOfRange    = errors.New("employee: assessment score out of range")
)
