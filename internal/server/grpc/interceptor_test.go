package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/bandroom/bandroom/internal/proto"
	"github.com/bandroom/bandroom/internal/server/auth"
)

func passthrough(called *bool) grpc.UnaryHandler {
	return func(ctx context.Context, req any) (any, error) {
		*called = true
		return "ok", nil
	}
}

func TestAuthenticationInterceptorSkipsUnprivilegedMethods(t *testing.T) {
	tokens := auth.NewManager([]byte("secret"), time.Hour, nil)
	interceptor := AuthenticationInterceptor(tokens)

	for _, method := range []string{
		pb.AuthService_Login_FullMethodName,
		pb.SongService_CreateSong_FullMethodName,
		pb.ConcertService_GetConcert_FullMethodName,
		pb.ParticipationService_DeleteParticipation_FullMethodName,
	} {
		called := false
		_, err := interceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: method}, passthrough(&called))
		if err != nil {
			t.Errorf("%s: unexpected error %v", method, err)
		}
		if !called {
			t.Errorf("%s: handler not invoked", method)
		}
	}
}

func TestAuthenticationInterceptorRequiresToken(t *testing.T) {
	tokens := auth.NewManager([]byte("secret"), time.Hour, nil)
	interceptor := AuthenticationInterceptor(tokens)
	info := &grpc.UnaryServerInfo{FullMethod: pb.ConcertService_CreateConcert_FullMethodName}

	called := false
	_, err := interceptor(context.Background(), nil, info, passthrough(&called))
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("no metadata: want Unauthenticated, got %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "not-a-token"))
	_, err = interceptor(ctx, nil, info, passthrough(&called))
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("garbage token: want Unauthenticated, got %v", err)
	}
	if called {
		t.Error("handler invoked despite failed authentication")
	}
}

func TestAuthenticationInterceptorRejectsExpiredToken(t *testing.T) {
	expired := auth.NewManager([]byte("secret"), -time.Hour, nil)
	token, err := expired.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tokens := auth.NewManager([]byte("secret"), time.Hour, nil)
	interceptor := AuthenticationInterceptor(tokens)
	info := &grpc.UnaryServerInfo{FullMethod: pb.ConcertService_CreateConcert_FullMethodName}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	called := false
	_, err = interceptor(ctx, nil, info, passthrough(&called))
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("expired token: want Unauthenticated, got %v", err)
	}
}

func TestAuthenticationInterceptorPlantsVerifiedIdentity(t *testing.T) {
	tokens := auth.NewManager([]byte("secret"), time.Hour, nil)
	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	interceptor := AuthenticationInterceptor(tokens)
	info := &grpc.UnaryServerInfo{FullMethod: pb.ConcertService_CreateConcert_FullMethodName}

	// spoofed identity metadata rides along; only the token counts
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"authorization", "Bearer "+token,
		"x-user-id", "42",
	))

	var gotID uint64
	var gotOK bool
	_, err = interceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		gotID, gotOK = UserIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !gotOK || gotID != 7 {
		t.Errorf("verified identity: got (%d, %v), want (7, true)", gotID, gotOK)
	}
}

func TestAuthorizationInterceptorGatesOnAdminSet(t *testing.T) {
	admins := auth.NewAdminSet([]uint64{42})
	interceptor := AuthorizationInterceptor(admins)
	info := &grpc.UnaryServerInfo{FullMethod: pb.ConcertService_CreateConcert_FullMethodName}

	called := false
	_, err := interceptor(context.Background(), nil, info, passthrough(&called))
	if status.Code(err) != codes.PermissionDenied {
		t.Errorf("no identity: want PermissionDenied, got %v", err)
	}

	ctx := context.WithValue(context.Background(), userIDKey, uint64(7))
	_, err = interceptor(ctx, nil, info, passthrough(&called))
	if status.Code(err) != codes.PermissionDenied {
		t.Errorf("non-admin: want PermissionDenied, got %v", err)
	}
	if called {
		t.Error("handler invoked despite denied authorization")
	}

	ctx = context.WithValue(context.Background(), userIDKey, uint64(42))
	_, err = interceptor(ctx, nil, info, passthrough(&called))
	if err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
	if !called {
		t.Error("handler not invoked for admin")
	}
}

func TestAuthorizationInterceptorSkipsUnprivilegedMethods(t *testing.T) {
	interceptor := AuthorizationInterceptor(auth.NewAdminSet(nil))

	called := false
	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: pb.SongService_DeleteSong_FullMethodName}, passthrough(&called))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !called {
		t.Error("handler not invoked")
	}
}
