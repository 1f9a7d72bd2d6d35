package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"
)

// recoveryAction decides what CallTool does after a failed attempt.
type recoveryAction int

const (
	// noRetry: the error is not recoverable (bad request, protocol error,
	// deadline exceeded).
	noRetry recoveryAction = iota
	// retrySameSession: transient, the existing session is still usable.
	retrySameSession
	// retryNewSession: the connection is dead, recreate before retrying.
	retryNewSession
)

const (
	// initTimeout bounds transport creation plus the MCP handshake.
	initTimeout = 30 * time.Second

	// reinitTimeout bounds session recreation during call recovery.
	reinitTimeout = 10 * time.Second

	// callTimeout is the default per-call deadline when a source sets none.
	// Warehouse queries are legitimately slow; the tool runtime's hard
	// timeout sits above this.
	callTimeout = 90 * time.Second

	retryBackoffMin = 250 * time.Millisecond
	retryBackoffMax = 750 * time.Millisecond

	// healthPingTimeout bounds a single health probe.
	healthPingTimeout = 5 * time.Second

	// healthInterval is the health check loop period.
	healthInterval = 15 * time.Second
)

// classifyError maps a CallTool failure to a recovery action.
func classifyError(err error) recoveryAction {
	if err == nil {
		return noRetry
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return noRetry
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			// A timed-out source is likely still busy; retrying piles on.
			return noRetry
		}
		return retryNewSession
	}

	if isConnectionError(err) {
		return retryNewSession
	}

	// JSON-RPC protocol errors are client-side mistakes, not transient.
	if isProtocolError(err) {
		return noRetry
	}

	return noRetry
}

func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
		"no such host",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func isProtocolError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"method not found",
		"invalid params",
		"invalid request",
		"parse error",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
