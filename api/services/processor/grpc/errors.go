package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

// codeFor maps service errors onto gRPC codes. Specific errors are matched
// before the kind they wrap.
func codeFor(err error) codes.Code {
	kind := errkind.Of(err)
	switch {
	case kind == errkind.PartialFailure:
		return codes.Internal
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, app.ErrUserNotFound):
		return codes.NotFound
	case errors.Is(err, aggregate.ErrProviderAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, adapter.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, adapter.ErrRemoteRejected):
		return codes.FailedPrecondition
	case errors.Is(err, errkind.NotImplemented):
		return codes.Unimplemented
	}
	switch kind {
	case errkind.Validation:
		return codes.InvalidArgument
	case errkind.Conflict:
		return codes.FailedPrecondition
	case errkind.Persistence:
		return codes.Unavailable
	}
	return codes.Internal
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeFor(err), err.Error())
}
