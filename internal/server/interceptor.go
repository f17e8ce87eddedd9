package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/trulyinvoice/trulyinvoice/internal/common"
)

// UnaryLoggingInterceptor assigns each call a request ID (honoring an
// incoming x-request-id header) and logs method, duration and status code.
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				rid = vals[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		if err != nil {
			logger.Warn("rpc.done",
				"method", info.FullMethod,
				"request_id", rid,
				"code", code.String(),
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err,
			)
		} else {
			logger.Info("rpc.done",
				"method", info.FullMethod,
				"request_id", rid,
				"code", code.String(),
				"elapsed_ms", elapsed.Milliseconds(),
			)
		}
		return resp, err
	}
}
