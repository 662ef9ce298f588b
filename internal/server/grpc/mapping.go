package grpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/logging"
	"github.com/bandroom/bandroom/internal/server/models"
)

// mapServiceError translates the service-layer error taxonomy into gRPC
// statuses. Anything outside the known sentinels is a backend failure:
// logged with detail, returned opaque.
func mapServiceError(ctx context.Context, log logging.Logger, resource string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Errorf(codes.NotFound, "%s not found", resource)
	case errors.Is(err, common.ErrorUnknownMaskPath):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		log.Error(ctx, "storage failure", "resource", resource, "error", err)
		return status.Error(codes.Internal, "database error")
	}
}

// parseID parses a decimal resource name into a positive id.
func parseID(name string) (int64, error) {
	id, err := strconv.ParseInt(name, 10, 64)
	if err != nil || id <= 0 {
		return 0, status.Errorf(codes.InvalidArgument, "invalid id %q", name)
	}
	return id, nil
}

// parseParticipationName parses the colon-delimited "songId:personId:role"
// triplet that names a participation.
func parseParticipationName(name string) (models.ParticipationKey, error) {
	parts := strings.SplitN(name, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return models.ParticipationKey{}, status.Errorf(codes.InvalidArgument, "invalid participation name %q, want songId:personId:role", name)
	}

	songID, err := parseID(parts[0])
	if err != nil {
		return models.ParticipationKey{}, err
	}
	personID, err := parseID(parts[1])
	if err != nil {
		return models.ParticipationKey{}, err
	}

	return models.ParticipationKey{SongID: songID, PersonID: personID, Role: parts[2]}, nil
}
