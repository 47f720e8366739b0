package handler

import (
	"context"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
// すべてのメソッドはログイン済みであることを要求します。
type DirectoryGrpcHandler struct {
	sessions  session.UseCase
	users     user.UseCase
	employees employee.UseCase
	dashboardpb.UnimplementedDirectoryServiceServer
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(sessions session.UseCase, users user.UseCase, employees employee.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{sessions: sessions, users: users, employees: employees}
}

// GetUser はユーザーを返します。
func (h *DirectoryGrpcHandler) GetUser(ctx context.Context, req *dashboardpb.GetUserRequest) (*dashboardpb.UserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := h.requireSession(ctx); err != nil {
		return nil, err
	}

	u, err := h.users.GetUser(ctx, user.GetUserInput{Username: req.GetUsername()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.UserResponse{User: toProtoUser(u)}, nil
}

// ListUsers はユーザー一覧を返します。role が空なら全ロールです。
func (h *DirectoryGrpcHandler) ListUsers(ctx context.Context, req *dashboardpb.ListUsersRequest) (*dashboardpb.ListUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := h.requireSession(ctx); err != nil {
		return nil, err
	}

	var in user.ListUsersInput
	if req.GetRole() != "" {
		role := user.Role(req.GetRole())
		if !role.IsValid() {
			return nil, toStatusError(user.ErrInvalidRole)
		}
		in.Role = &role
	}

	list, err := h.users.ListUsers(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	users := make([]*dashboardpb.User, 0, len(list))
	for _, u := range list {
		users = append(users, toProtoUser(u))
	}
	return &dashboardpb.ListUsersResponse{Users: users}, nil
}

// ListEmployees は学習プロファイルの一覧をページングして返します。
func (h *DirectoryGrpcHandler) ListEmployees(ctx context.Context, req *dashboardpb.ListEmployeesRequest) (*dashboardpb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := h.requireSession(ctx); err != nil {
		return nil, err
	}

	result, err := h.employees.ListEmployees(ctx, employee.ListEmployeesInput{
		Department: req.GetDepartment(),
		Search:     req.GetSearch(),
		PageSize:   int(req.GetPageSize()),
		PageToken:  req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	profiles := make([]*dashboardpb.Profile, 0, len(result.Employees))
	for _, e := range result.Employees {
		profiles = append(profiles, toProtoProfile(e))
	}
	return &dashboardpb.ListEmployeesResponse{Employees: profiles, NextPageToken: result.NextPageToken}, nil
}

// Departments は部署名を返します。
func (h *DirectoryGrpcHandler) Departments(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.DepartmentsResponse, error) {
	if err := h.requireSession(ctx); err != nil {
		return nil, err
	}

	list, err := h.employees.Departments(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.DepartmentsResponse{Departments: list}, nil
}

func (h *DirectoryGrpcHandler) requireSession(ctx context.Context) error {
	if _, err := h.sessions.Current(ctx); err != nil {
		return toStatusError(err)
	}
	return nil
}
