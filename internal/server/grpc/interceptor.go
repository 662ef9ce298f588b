package grpc

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/logging"
	"github.com/bandroom/bandroom/internal/server/auth"
	pb "github.com/bandroom/bandroom/internal/proto"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIDFromContext returns the verified subject id planted by the
// authentication interceptor. Handlers trust only this value; identity
// never travels as caller-supplied metadata.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok
}

// privilegedMethods is the capability table: the set of full method names
// that require a verified admin. Everything absent from the table passes
// both interceptors untouched.
var privilegedMethods = map[string]struct{}{
	pb.ConcertService_CreateConcert_FullMethodName: {},
}

// AuthenticationInterceptor verifies the bearer token on privileged methods
// and plants the verified subject id in the call context. Methods outside
// the capability table are forwarded as-is.
func AuthenticationInterceptor(tokens *auth.Manager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := privilegedMethods[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		values := md.Get(common.AuthorizationHeaderName)
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		token := strings.TrimPrefix(values[0], common.BearerPrefix)

		claims, err := tokens.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		return handler(context.WithValue(ctx, userIDKey, claims.UserID), req)
	}
}

// AuthorizationInterceptor gates privileged methods on admin-set membership
// of the subject the authenticator verified. It never inspects the wire
// credential itself.
func AuthorizationInterceptor(admins *auth.AdminSet) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := privilegedMethods[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		id, ok := UserIDFromContext(ctx)
		if !ok {
			return nil, status.Error(codes.PermissionDenied, "no verified identity")
		}
		if !admins.Contains(id) {
			return nil, status.Error(codes.PermissionDenied, "admin privileges required")
		}

		return handler(ctx, req)
	}
}

// RequestLogInterceptor tags every call with a request id and logs its
// method, code and outcome.
func RequestLogInterceptor(log logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := log.With("request_id", uuid.NewString())

		resp, err := handler(ctx, req)
		if err != nil {
			l.Warn(ctx, "request failed", "method", info.FullMethod, "code", status.Code(err).String(), "error", err)
		} else {
			l.Info(ctx, "request handled", "method", info.FullMethod)
		}
		return resp, err
	}
}
