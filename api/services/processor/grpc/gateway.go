package grpcserver

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"

	processorsv1 "github.com/tbeaudouin05/payment-processors/api/gen/processors/v1"
)

// HeaderMatcher forwards X-Request-Id on top of grpc-gateway's default set.
func HeaderMatcher(key string) (string, bool) {
	if strings.EqualFold(key, "X-Request-Id") {
		return "x-request-id", true
	}
	return runtime.DefaultHeaderMatcher(key)
}

// RegisterGateway mounts the HTTP routes declared by the google.api.http
// options of processor.proto on mux, calling srv in process.
func RegisterGateway(ctx context.Context, mux *runtime.ServeMux, srv processorsv1.ProcessorServiceServer) error {
	return processorsv1.RegisterProcessorServiceHandlerServer(ctx, mux, srv)
}
