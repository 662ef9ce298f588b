package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/bandroom/bandroom/internal/proto"
)

// Login issues a signed access token for the requested subject. There is no
// password exchange; the deployment trusts the channel and the admin set
// decides what the token is worth.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.UserId == 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	token, err := s.tokens.Issue(req.UserId)
	if err != nil {
		s.log.Error(ctx, "token issue failed", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "could not issue token")
	}

	return &pb.LoginResponse{Token: token}, nil
}
