package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func dialHandler(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_HealthStatus(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := dialHandler(t, h)
	ctx := context.Background()

	for _, name := range []string{"", ChatServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus(), "service %q", name)
	}

	h.SetServing(true)
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ChatServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	h.SetServing(false)
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_ShutdownIgnoresLaterUpdates(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := dialHandler(t, h)

	h.SetServing(true)
	h.Shutdown()
	h.SetServing(true)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestInterceptors_LogTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "abc"))
	_, err := h.traceInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		return h.loggingInterceptor(ctx, req, info, func(context.Context, any) (any, error) {
			return nil, status.Error(codes.Unavailable, "down")
		})
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "abc", line["trace_id"])
	assert.Equal(t, info.FullMethod, line["method"])
	assert.Equal(t, "Unavailable", line["code"])
}
