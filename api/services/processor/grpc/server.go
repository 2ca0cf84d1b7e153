// Package grpcserver exposes the processor service over gRPC and, through
// grpc-gateway's mux, over HTTP.
package grpcserver

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	processorsv1 "github.com/tbeaudouin05/payment-processors/api/gen/processors/v1"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
)

// ServiceName is the fully qualified name of the processor service.
var ServiceName = processorsv1.ProcessorService_ServiceDesc.ServiceName

// Server adapts app.Service to processorsv1.ProcessorServiceServer.
type Server struct {
	processorsv1.UnimplementedProcessorServiceServer
	svc app.Service
}

func New(svc app.Service) *Server { return &Server{svc: svc} }

func (s *Server) CreateProcessor(ctx context.Context, in *processorsv1.CreateProcessorRequest) (*processorsv1.ProcessorResponse, error) {
	view, err := s.svc.CreateProcessor(ctx, app.CreateRequest{Owner: in.GetOwner(), Provider: in.GetProvider(), Token: in.GetToken()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ProcessorResponse{Processor: toProcessorView(view)}, nil
}

func (s *Server) GetProcessor(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.ProcessorResponse, error) {
	view, err := s.svc.GetProcessor(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ProcessorResponse{Processor: toProcessorView(view)}, nil
}

func (s *Server) SetDefaultProcessor(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.ProcessorResponse, error) {
	view, err := s.svc.SetDefaultProcessor(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ProcessorResponse{Processor: toProcessorView(view)}, nil
}

func (s *Server) DeleteProcessor(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.ProcessorResponse, error) {
	view, err := s.svc.DeleteProcessor(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ProcessorResponse{Processor: toProcessorView(view)}, nil
}

func (s *Server) AddPaymentMethod(ctx context.Context, in *processorsv1.AddPaymentMethodRequest) (*processorsv1.ProcessorResponse, error) {
	view, err := s.svc.AddPaymentMethod(ctx, in.GetOwner(), in.GetProvider(), in.GetToken())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ProcessorResponse{Processor: toProcessorView(view)}, nil
}

func (s *Server) CancelSubscription(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.ConfirmationResponse, error) {
	conf, err := s.svc.CancelSubscription(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.ConfirmationResponse{Provider: string(conf.Provider), RemoteId: conf.RemoteID, Message: conf.Message}, nil
}

func (s *Server) GetBillingDate(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.BillingDateResponse, error) {
	day, err := s.svc.GetBillingDate(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.BillingDateResponse{BillingDate: int32(day)}, nil
}

func (s *Server) GetPaymentMethods(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.PaymentMethodsResponse, error) {
	methods, err := s.svc.GetPaymentMethods(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.PaymentMethodsResponse{PaymentMethods: toMethodSummaries(methods)}, nil
}

func (s *Server) GetDefaultPaymentMethod(ctx context.Context, in *processorsv1.ProcessorRequest) (*processorsv1.DefaultPaymentMethodResponse, error) {
	m, err := s.svc.GetDefaultPaymentMethod(ctx, in.GetOwner(), in.GetProvider())
	if err != nil {
		return nil, toStatus(err)
	}
	return &processorsv1.DefaultPaymentMethodResponse{PaymentMethod: toMethodSummary(m)}, nil
}

// Register adds the processor service to s.
func Register(s grpc.ServiceRegistrar, srv processorsv1.ProcessorServiceServer) {
	processorsv1.RegisterProcessorServiceServer(s, srv)
}

// NewGRPCServer builds a gRPC server with the processor and health services registered.
func NewGRPCServer(srv processorsv1.ProcessorServiceServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(logUnary)}, opts...)
	s := grpc.NewServer(opts...)
	Register(s, srv)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	slog.InfoContext(ctx, "grpc request",
		"module", "grpc",
		"operation", info.FullMethod,
		"code", status.Code(err).String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, err
}
