package handler

import (
	"context"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// AuthGrpcHandler は AuthService の gRPC 実装です。
type AuthGrpcHandler struct {
	svc session.UseCase
	dashboardpb.UnimplementedAuthServiceServer
}

// NewAuthGrpcHandler は AuthGrpcHandler を生成します。
func NewAuthGrpcHandler(svc session.UseCase) *AuthGrpcHandler {
	return &AuthGrpcHandler{svc: svc}
}

// Login は資格情報を検証してセッションを開始します。
func (h *AuthGrpcHandler) Login(ctx context.Context, req *dashboardpb.LoginRequest) (*dashboardpb.SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	s, err := h.svc.Login(ctx, session.LoginInput{
		Username: req.GetUsername(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardpb.SessionResponse{Session: toProtoSession(s)}, nil
}

// Logout はセッションを破棄します。
func (h *AuthGrpcHandler) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.svc.Logout(ctx); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// CurrentSession はアクティブなセッションを返します。
func (h *AuthGrpcHandler) CurrentSession(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.SessionResponse, error) {
	s, err := h.svc.Current(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.SessionResponse{Session: toProtoSession(s)}, nil
}
