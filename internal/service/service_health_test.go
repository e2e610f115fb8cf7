package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthService_CheckDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinger := mock.NewMockPinger(ctrl)
	svc := NewHealthService(pinger, "vero", logger.Nop())
	ctx := context.Background()

	pinger.EXPECT().PingContext(ctx).Return(nil)
	name, err := svc.CheckDB(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vero", name)

	down := errors.New("connection refused")
	pinger.EXPECT().PingContext(ctx).Return(down)
	name, err = svc.CheckDB(ctx)
	require.ErrorIs(t, err, down)
	assert.Empty(t, name)
}
