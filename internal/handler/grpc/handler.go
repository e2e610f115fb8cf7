package grpc

import (
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ChatServiceName is the service name reported by the health server next to
// the overall ("") status.
const ChatServiceName = "vero.Chat"

// Handler is the root gRPC transport handler.
//
// It owns the grpc.health.v1 server whose status is driven by the database
// health worker through [Handler.SetServing]. Both the overall status and
// [ChatServiceName] start as NOT_SERVING until the first successful check.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the options the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.traceInterceptor, h.loggingInterceptor),
	}
}

// SetServing flips the overall and chat service status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ChatServiceName, status)
}

// Shutdown sets every status to NOT_SERVING and ignores later updates, so
// watchers learn about the stop before connections drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
