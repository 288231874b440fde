package server

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/smilematch/quotes/internal/common"
)

func TestRequestIDInterceptorThreadsRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	interceptor := RequestIDInterceptor(logger)

	var seen string
	resp, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/quotes.v1.QuotesService/ListQuotes"},
		func(ctx context.Context, _ any) (any, error) {
			seen = common.RequestIDFromContext(ctx)
			return "resp", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	_, parseErr := uuid.Parse(seen)
	assert.NoError(t, parseErr, "handler context must carry a request ID")
}

func TestRequestIDInterceptorPassesThroughErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	interceptor := RequestIDInterceptor(logger)

	cause := errors.New("boom")
	_, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/quotes.v1.QuotesService/UploadQuote"},
		func(context.Context, any) (any, error) { return nil, cause })

	assert.ErrorIs(t, err, cause)
}
