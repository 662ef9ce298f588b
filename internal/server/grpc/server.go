// Package grpc exposes the bandroom services over gRPC: one Server type
// implements all four service interfaces, and a chained interceptor pipeline
// (request log, authentication, authorization) guards the privileged method.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/bandroom/bandroom/internal/logging"
	pb "github.com/bandroom/bandroom/internal/proto"
	"github.com/bandroom/bandroom/internal/server/auth"
	"github.com/bandroom/bandroom/internal/server/services"
)

type Server struct {
	address        string
	log            logging.Logger
	tokens         *auth.Manager
	admins         *auth.AdminSet
	songs          *services.SongService
	concerts       *services.ConcertService
	participations *services.ParticipationService
}

func NewServer(address string, log logging.Logger, tokens *auth.Manager, admins *auth.AdminSet,
	songs *services.SongService, concerts *services.ConcertService, participations *services.ParticipationService) *Server {
	return &Server{
		address:        address,
		log:            log.With("module", "grpc_server"),
		tokens:         tokens,
		admins:         admins,
		songs:          songs,
		concerts:       concerts,
		participations: participations,
	}
}

// build assembles the grpc.Server with the interceptor chain and all
// service registrations. Split from Run so tests can serve it over bufconn.
func (s *Server) build() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RequestLogInterceptor(s.log),
		AuthenticationInterceptor(s.tokens),
		AuthorizationInterceptor(s.admins),
	))

	pb.RegisterAuthServiceServer(srv, s)
	pb.RegisterSongServiceServer(srv, s)
	pb.RegisterConcertServiceServer(srv, s)
	pb.RegisterParticipationServiceServer(srv, s)

	return srv
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.build()

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "stopping gRPC server")
		srv.GracefulStop()
	}()

	s.log.Info(ctx, "starting gRPC server", "address", s.address)

	return srv.Serve(listen)
}
