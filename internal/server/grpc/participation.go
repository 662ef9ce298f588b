package grpc

import (
	"context"
	"database/sql"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/bandroom/bandroom/internal/proto"
	"github.com/bandroom/bandroom/internal/server/models"
)

func participationToProto(m *models.Participation) *pb.Participation {
	return &pb.Participation{
		SongId:    uint64(m.SongID),
		PersonId:  uint64(m.PersonID),
		Role:      m.Role,
		RoleTitle: m.RoleTitle.String,
	}
}

func participationFromProto(p *pb.Participation) *models.Participation {
	return &models.Participation{
		SongID:    int64(p.SongId),
		PersonID:  int64(p.PersonId),
		Role:      p.Role,
		RoleTitle: sql.NullString{String: p.RoleTitle, Valid: p.RoleTitle != ""},
	}
}

func validateParticipation(p *pb.Participation) error {
	if p.SongId == 0 || p.PersonId == 0 {
		return status.Error(codes.InvalidArgument, "song_id and person_id are required")
	}
	if strings.TrimSpace(p.Role) == "" {
		return status.Error(codes.InvalidArgument, "participation role is required")
	}
	return nil
}

func (s *Server) CreateParticipation(ctx context.Context, req *pb.CreateParticipationRequest) (*pb.Participation, error) {
	if req.Participation == nil {
		return nil, status.Error(codes.InvalidArgument, "create_participation requires a participation payload")
	}
	if err := validateParticipation(req.Participation); err != nil {
		return nil, err
	}

	created, err := s.participations.Create(ctx, participationFromProto(req.Participation))
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "participation", err)
	}

	return participationToProto(created), nil
}

func (s *Server) GetParticipation(ctx context.Context, req *pb.GetParticipationRequest) (*pb.Participation, error) {
	key, err := parseParticipationName(req.Name)
	if err != nil {
		return nil, err
	}

	participation, err := s.participations.Get(ctx, key)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "participation", err)
	}

	return participationToProto(participation), nil
}

func (s *Server) ListParticipations(ctx context.Context, req *pb.ListParticipationsRequest) (*pb.ListParticipationsResponse, error) {
	participations, err := s.participations.List(ctx, req.PageSize)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "participation", err)
	}

	resp := &pb.ListParticipationsResponse{Participations: make([]*pb.Participation, 0, len(participations))}
	for _, participation := range participations {
		resp.Participations = append(resp.Participations, participationToProto(participation))
	}
	return resp, nil
}

func (s *Server) UpdateParticipation(ctx context.Context, req *pb.UpdateParticipationRequest) (*pb.Participation, error) {
	if req.Participation == nil {
		return nil, status.Error(codes.InvalidArgument, "update_participation requires a participation payload")
	}
	if err := validateParticipation(req.Participation); err != nil {
		return nil, err
	}

	var paths []string
	if req.UpdateMask != nil {
		paths = req.UpdateMask.Paths
	}

	updated, err := s.participations.Update(ctx, participationFromProto(req.Participation), paths)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "participation", err)
	}

	return participationToProto(updated), nil
}

func (s *Server) DeleteParticipation(ctx context.Context, req *pb.DeleteParticipationRequest) (*pb.Empty, error) {
	key, err := parseParticipationName(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.participations.Delete(ctx, key); err != nil {
		return nil, mapServiceError(ctx, s.log, "participation", err)
	}

	return &pb.Empty{}, nil
}
