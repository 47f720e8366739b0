package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, user.ErrInvalidUsername),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, employee.ErrInvalidUsername),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidPageToken),
		errors.Is(err, catalog.ErrInvalidID),
		errors.Is(err, catalog.ErrInvalidCourse),
		errors.Is(err, catalog.ErrAnswerCountMismatch),
		errors.Is(err, catalog.ErrInvalidAnswer):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, session.ErrInvalidCredentials):
		// 失敗理由は区別しない。
		return status.Error(codes.Unauthenticated, "invalid username or password")
	case errors.Is(err, session.ErrNoSession):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, dashboard.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, catalog.ErrCourseNotFound),
		errors.Is(err, catalog.ErrAssessmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, dashboard.ErrProfileNotFound),
		errors.Is(err, session.ErrCorruptSession),
		errors.Is(err, session.ErrUnsupportedVersion):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
