package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	bootstrap "github.com/tbeaudouin05/payment-processors/api/bootstrap"
	grpcserver "github.com/tbeaudouin05/payment-processors/api/services/processor/grpc"
)

// NewRouter returns the central HTTP router for the API using grpc-gateway.
// It maps the ProcessorService routes onto the runtime mux.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; requests then fail Unavailable).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	mux := runtime.NewServeMux(runtime.WithIncomingHeaderMatcher(grpcserver.HeaderMatcher))
	svc := bootstrap.GetProcessorService()
	if svc == nil {
		return unavailable(mux)
	}
	if err := grpcserver.RegisterGateway(context.Background(), mux, grpcserver.New(svc)); err != nil {
		slog.Error("failed to register grpc-gateway", "err", err)
	}
	return mux
}

// unavailable answers every request with 503 when the service could not be built.
func unavailable(mux *runtime.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, outbound := runtime.MarshalerForRequest(mux, r)
		runtime.HTTPError(r.Context(), mux, outbound, w, r, errUnavailable)
	})
}
