package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/lock"
)

func TestCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		http int
	}{
		{app.ErrMissingEmail, codes.InvalidArgument, http.StatusBadRequest},
		{adapter.ErrUnsupportedProvider, codes.InvalidArgument, http.StatusBadRequest},
		{aggregate.ErrInvalidProcessorName, codes.InvalidArgument, http.StatusBadRequest},
		{app.ErrUserNotFound, codes.NotFound, http.StatusNotFound},
		{aggregate.ErrProviderAlreadyExists, codes.AlreadyExists, http.StatusConflict},
		{aggregate.ErrNoDefaultProcessor, codes.FailedPrecondition, http.StatusBadRequest},
		{aggregate.ErrProcessorNotRegistered, codes.FailedPrecondition, http.StatusBadRequest},
		{adapter.ErrAmbiguousSubscription, codes.FailedPrecondition, http.StatusBadRequest},
		{fmt.Errorf("%w: delete customer: gone", adapter.ErrNotFound), codes.NotFound, http.StatusNotFound},
		{adapter.ErrRemoteRejected, codes.FailedPrecondition, http.StatusBadRequest},
		{adapter.ErrRemoteInternal, codes.Internal, http.StatusInternalServerError},
		{db.ErrRevisionConflict, codes.Unavailable, http.StatusServiceUnavailable},
		{lock.ErrNotAcquired, codes.Unavailable, http.StatusServiceUnavailable},
		{adapter.ErrNotImplemented, codes.Unimplemented, http.StatusNotImplemented},
		{fmt.Errorf("%w: rollback failed: %w", errkind.PartialFailure, app.ErrMissingEmail), codes.Internal, http.StatusInternalServerError},
		{context.DeadlineExceeded, codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{fmt.Errorf("%w: gateway timeout", errkind.Remote), codes.Internal, http.StatusInternalServerError},
		{fmt.Errorf("save: %w", fmt.Errorf("%w: lease lost", errkind.Persistence)), codes.Unavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: stale default", errkind.Conflict), codes.FailedPrecondition, http.StatusBadRequest},
		{errors.New("unclassified"), codes.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got := codeFor(tc.err)
			assert.Equal(t, tc.code, got)
			assert.Equal(t, tc.http, runtime.HTTPStatusFromCode(got))
		})
	}
}

func TestToStatus_KeepsExistingStatus(t *testing.T) {
	in := status.Error(codes.Aborted, "already a status")
	assert.Equal(t, in, toStatus(in))
	assert.Nil(t, toStatus(nil))
	assert.Equal(t, codes.InvalidArgument, status.Code(toStatus(app.ErrMissingOwner)))
}
