package planner

import (
	"context"
	"fmt"
	"io"

	plannerv1 "github.com/quarryhq/quarry/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the planner sidecar via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client plannerv1.PlannerServiceClient
}

// NewGRPCClient creates a new gRPC planner client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to planner service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: plannerv1.NewPlannerServiceClient(conn),
	}, nil
}

// Plan sends a planning request and returns a channel of chunks.
func (c *GRPCClient) Plan(ctx context.Context, req *PlanRequest) (<-chan Chunk, error) {
	stream, err := c.client.Plan(ctx, toProtoPlanRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gRPC Plan call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Complete runs a single-shot generation on the sidecar.
func (c *GRPCClient) Complete(ctx context.Context, req *CompleteRequest) (*CompleteResponse, error) {
	resp, err := c.client.Complete(ctx, &plannerv1.CompleteRequest{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Config:       toProtoConfig(req.Config),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}
	out := &CompleteResponse{Text: resp.Text}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// State reports the connectivity state of the underlying channel, for the
// health endpoint. gRPC connects lazily, so "idle" is normal before the
// first call.
func (c *GRPCClient) State() string {
	return c.conn.GetState().String()
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoPlanRequest(req *PlanRequest) *plannerv1.PlanRequest {
	return &plannerv1.PlanRequest{
		CompletionId:     req.CompletionID,
		AgentExecutionId: req.AgentExecutionID,
		SystemPrompt:     req.SystemPrompt,
		UserPrompt:       req.UserPrompt,
		CatalogJson:      req.CatalogJSON,
		Config:           toProtoConfig(req.Config),
	}
}

func toProtoConfig(cfg GenerationConfig) *plannerv1.GenerationConfig {
	return &plannerv1.GenerationConfig{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
}

func fromProtoResponse(resp *plannerv1.PlanResponse) Chunk {
	switch c := resp.Content.(type) {
	case *plannerv1.PlanResponse_Token:
		return &TokenChunk{Text: c.Token.Text}
	case *plannerv1.PlanResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
		}
	case *plannerv1.PlanResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
