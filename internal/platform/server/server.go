package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/platform/logging"
	"google.golang.org/grpc"
)

// Services はサーバーに登録する gRPC サービスの実装です。nil のサービスは登録しません。
type Services struct {
	Auth      dashboardpb.AuthServiceServer
	Dashboard dashboardpb.DashboardServiceServer
	Catalog   dashboardpb.CatalogServiceServer
	Directory dashboardpb.DirectoryServiceServer
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	logger     *slog.Logger
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, logger *slog.Logger, svcs Services, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(logging.UnaryServerInterceptor(logger))}, opts...)
	srv := grpc.NewServer(opts...)

	if svcs.Auth != nil {
		dashboardpb.RegisterAuthServiceServer(srv, svcs.Auth)
	}
	if svcs.Dashboard != nil {
		dashboardpb.RegisterDashboardServiceServer(srv, svcs.Dashboard)
	}
	if svcs.Catalog != nil {
		dashboardpb.RegisterCatalogServiceServer(srv, svcs.Catalog)
	}
	if svcs.Directory != nil {
		dashboardpb.RegisterDirectoryServiceServer(srv, svcs.Directory)
	}

	return &Server{
		listenAddr: listenAddr,
		logger:     logger,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down gRPC server")
			s.grpcServer.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info("gRPC server listening", slog.String("addr", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
