// Package logging は slog ベースの構造化ログと gRPC 向けのアクセスログを提供します。
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// New は設定に従って slog.Logger を生成します。
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UnaryServerInterceptor はメソッド名・ステータスコード・処理時間を記録します。
// パスワードなどを含むリクエスト本文は記録しません。
func UnaryServerInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []slog.Attr{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("latency", time.Since(start)),
		}

		level := slog.LevelInfo
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "grpc request", attrs...)

		return resp, err
	}
}
