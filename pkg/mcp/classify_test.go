package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected recoveryAction
	}{
		{"nil error", nil, noRetry},
		{"context canceled", context.Canceled, noRetry},
		{"context deadline exceeded", context.DeadlineExceeded, noRetry},
		{
			"wrapped context canceled",
			errors.Join(errors.New("call failed"), context.Canceled),
			noRetry,
		},
		{"eof", io.EOF, retryNewSession},
		{"unexpected eof", io.ErrUnexpectedEOF, retryNewSession},
		{
			"connection refused",
			errors.New("dial tcp 127.0.0.1:8080: connection refused"),
			retryNewSession,
		},
		{
			"connection reset",
			errors.New("read tcp: connection reset by peer"),
			retryNewSession,
		},
		{"broken pipe", errors.New("write: broken pipe"), retryNewSession},
		{
			"jsonrpc method not found",
			errors.New("JSON-RPC error: method not found"),
			noRetry,
		},
		{
			"jsonrpc invalid params",
			errors.New("invalid params: missing required field"),
			noRetry,
		},
		{"unknown error", errors.New("something unexpected happened"), noRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyError(tt.err))
		})
	}
}

// fakeNetError implements net.Error.
type fakeNetError struct {
	msg     string
	timeout bool
}

func (e *fakeNetError) Error() string   { return e.msg }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

var _ net.Error = (*fakeNetError)(nil)

func TestClassifyError_NetError(t *testing.T) {
	assert.Equal(t, noRetry,
		classifyError(&fakeNetError{msg: "i/o timeout", timeout: true}))
	assert.Equal(t, retryNewSession,
		classifyError(&fakeNetError{msg: "connection refused"}))
}
