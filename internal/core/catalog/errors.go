package catalog

import "errors"

var (
	ErrInvalidID           = errors.New("catalog: invalid id")
	ErrCourseNotFound      = errors.New("catalog: course not found")
	ErrAssessmentNotFound  = errors.New("catalog: assessment not found")
	ErrAnswerCountMismatch = errors.New("catalog: answer count does not match question count")
	ErrInvalidAnswer       = errors.New("catalog: answer does not index an option")
	ErrInvalidAssessment   = errors.New("catalog: invalid assessment")
	ErrInvalidCourse       = errors.New("catalog: invalid course")
)
