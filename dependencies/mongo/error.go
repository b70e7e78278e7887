package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFoundError check if it is not found
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, mongo.ErrNilDocument) ||
		errors.Is(err, mongo.ErrNilCursor)
}

// IsConflictError check if it is a duplicate key error
func IsConflictError(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err)
}

func convertToStatusError(collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return status.Errorf(codes.Canceled, "%s error for %s", collection, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Errorf(codes.DeadlineExceeded, "%s error for %s", collection, err.Error())
	}
	if IsConflictError(err) {
		return status.Errorf(codes.AlreadyExists, "%s may already exists for %s", collection, err.Error())
	}
	if IsNotFoundError(err) {
		return status.Errorf(codes.NotFound, "%s may not found", collection)
	}
	return status.Errorf(codes.Internal, "%s db error %s", collection, err)
}
