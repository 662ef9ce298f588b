package grpc

import (
	"context"
	"database/sql"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/bandroom/bandroom/internal/proto"
	"github.com/bandroom/bandroom/internal/server/models"
)

func concertToProto(m *models.Concert) *pb.Concert {
	p := &pb.Concert{
		Id:   uint64(m.ID),
		Name: m.Name,
	}
	if m.Date.Valid {
		p.Date = timestamppb.New(m.Date.Time)
	}
	return p
}

func concertFromProto(p *pb.Concert) *models.Concert {
	m := &models.Concert{
		ID:   int64(p.Id),
		Name: p.Name,
	}
	if p.Date != nil {
		m.Date = sql.NullTime{Time: p.Date.AsTime(), Valid: true}
	}
	return m
}

func (s *Server) CreateConcert(ctx context.Context, req *pb.CreateConcertRequest) (*pb.Concert, error) {
	if req.Concert == nil {
		return nil, status.Error(codes.InvalidArgument, "create_concert requires a concert payload")
	}
	if strings.TrimSpace(req.Concert.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "concert name is required")
	}

	created, err := s.concerts.Create(ctx, concertFromProto(req.Concert))
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "concert", err)
	}

	return concertToProto(created), nil
}

func (s *Server) GetConcert(ctx context.Context, req *pb.GetConcertRequest) (*pb.Concert, error) {
	id, err := parseID(req.Name)
	if err != nil {
		return nil, err
	}

	concert, err := s.concerts.Get(ctx, id)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "concert", err)
	}

	return concertToProto(concert), nil
}

func (s *Server) ListConcerts(ctx context.Context, req *pb.ListConcertsRequest) (*pb.ListConcertsResponse, error) {
	concerts, err := s.concerts.List(ctx, req.PageSize)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "concert", err)
	}

	resp := &pb.ListConcertsResponse{Concerts: make([]*pb.Concert, 0, len(concerts))}
	for _, concert := range concerts {
		resp.Concerts = append(resp.Concerts, concertToProto(concert))
	}
	return resp, nil
}

func (s *Server) UpdateConcert(ctx context.Context, req *pb.UpdateConcertRequest) (*pb.Concert, error) {
	if req.Concert == nil {
		return nil, status.Error(codes.InvalidArgument, "update_concert requires a concert payload")
	}
	if req.Concert.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "concert id is required")
	}

	var paths []string
	if req.UpdateMask != nil {
		paths = req.UpdateMask.Paths
	}

	updated, err := s.concerts.Update(ctx, concertFromProto(req.Concert), paths)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "concert", err)
	}

	return concertToProto(updated), nil
}

func (s *Server) DeleteConcert(ctx context.Context, req *pb.DeleteConcertRequest) (*pb.Empty, error) {
	id, err := parseID(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.concerts.Delete(ctx, id); err != nil {
		return nil, mapServiceError(ctx, s.log, "concert", err)
	}

	return &pb.Empty{}, nil
}
