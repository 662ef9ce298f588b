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

func songToProto(m *models.Song) *pb.Song {
	return &pb.Song{
		Id:          uint64(m.ID),
		Title:       m.Title,
		Description: m.Description.String,
		Link:        m.Link.String,
	}
}

func songFromProto(p *pb.Song) *models.Song {
	return &models.Song{
		ID:          int64(p.Id),
		Title:       p.Title,
		Description: sql.NullString{String: p.Description, Valid: p.Description != ""},
		Link:        sql.NullString{String: p.Link, Valid: p.Link != ""},
	}
}

func (s *Server) CreateSong(ctx context.Context, req *pb.CreateSongRequest) (*pb.Song, error) {
	if req.Song == nil {
		return nil, status.Error(codes.InvalidArgument, "create_song requires a song payload")
	}
	if strings.TrimSpace(req.Song.Title) == "" {
		return nil, status.Error(codes.InvalidArgument, "song title is required")
	}

	created, err := s.songs.Create(ctx, songFromProto(req.Song))
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "song", err)
	}

	return songToProto(created), nil
}

func (s *Server) GetSong(ctx context.Context, req *pb.GetSongRequest) (*pb.Song, error) {
	id, err := parseID(req.Name)
	if err != nil {
		return nil, err
	}

	song, err := s.songs.Get(ctx, id)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "song", err)
	}

	return songToProto(song), nil
}

func (s *Server) ListSongs(ctx context.Context, req *pb.ListSongsRequest) (*pb.ListSongsResponse, error) {
	songs, err := s.songs.List(ctx, req.PageSize)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "song", err)
	}

	resp := &pb.ListSongsResponse{Songs: make([]*pb.Song, 0, len(songs))}
	for _, song := range songs {
		resp.Songs = append(resp.Songs, songToProto(song))
	}
	return resp, nil
}

func (s *Server) UpdateSong(ctx context.Context, req *pb.UpdateSongRequest) (*pb.Song, error) {
	if req.Song == nil {
		return nil, status.Error(codes.InvalidArgument, "update_song requires a song payload")
	}
	if req.Song.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "song id is required")
	}

	var paths []string
	if req.UpdateMask != nil {
		paths = req.UpdateMask.Paths
	}

	updated, err := s.songs.Update(ctx, songFromProto(req.Song), paths)
	if err != nil {
		return nil, mapServiceError(ctx, s.log, "song", err)
	}

	return songToProto(updated), nil
}

func (s *Server) DeleteSong(ctx context.Context, req *pb.DeleteSongRequest) (*pb.Empty, error) {
	id, err := parseID(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.songs.Delete(ctx, id); err != nil {
		return nil, mapServiceError(ctx, s.log, "song", err)
	}

	return &pb.Empty{}, nil
}
