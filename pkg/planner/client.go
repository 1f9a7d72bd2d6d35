package planner

import "context"

// Client is the Go-side interface for calling the planner sidecar.
// It wraps the gRPC connection and provides a channel-based streaming API.
type Client interface {
	// Plan sends one planning request and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Plan(ctx context.Context, req *PlanRequest) (<-chan Chunk, error)

	// Complete runs a single-shot generation. Used for report titles,
	// response scoring, and instruction suggestions.
	Complete(ctx context.Context, req *CompleteRequest) (*CompleteResponse, error)

	// Close releases the gRPC connection.
	Close() error
}

// PlanRequest is the Go-side representation of one planning call.
type PlanRequest struct {
	CompletionID     string
	AgentExecutionID string
	SystemPrompt     string
	UserPrompt       string
	CatalogJSON      string
	Config           GenerationConfig
}

// GenerationConfig selects the model and sampling parameters for a call.
type GenerationConfig struct {
	Model       string
	Temperature *float32
	MaxTokens   *int32
}

// CompleteRequest is a single-shot generation request.
type CompleteRequest struct {
	SystemPrompt string
	UserPrompt   string
	Config       GenerationConfig
}

// CompleteResponse is the full text of a single-shot generation.
type CompleteResponse struct {
	Text  string
	Usage *Usage
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeToken ChunkType = "token"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TokenChunk is a fragment of the model's raw text output.
type TokenChunk struct{ Text string }

// UsageChunk reports token consumption for this planning call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int32 }

// ErrorChunk signals an error from the planner sidecar.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TokenChunk) chunkType() ChunkType { return ChunkTypeToken }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
