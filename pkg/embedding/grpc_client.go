package embedding

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

// GRPCClient calls an external embedding service over gRPC. The service
// contract is a single unary method, /embedder.v1.Embedder/Embed, spoken
// with a JSON codec so the core carries no generated protocol code; the
// embedding sidecar registers the same codec.
type GRPCClient struct {
	conn      *grpc.ClientConn
	dimension int
}

const embedMethod = "/embedder.v1.Embedder/Embed"

// jsonCodec is the wire codec for the embedder service.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Vector []float32 `json:"vector"`
}

// NewGRPCClient connects to the embedding service at addr. dimension is
// the vector size the service is known to produce; responses of any other
// size are rejected.
func NewGRPCClient(addr string, dimension int) (*GRPCClient, error) {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to embedding service at %s: %w", addr, err)
	}
	return &GRPCClient{conn: conn, dimension: dimension}, nil
}

func (c *GRPCClient) Dimension() int { return c.dimension }

// Embed requests a vector for text. Transient transport failures map to
// ErrUnavailable so callers can skip trajectory work for the cycle.
func (c *GRPCClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	var resp embedResponse
	if err := c.conn.Invoke(ctx, embedMethod, &embedRequest{Text: text}, &resp); err != nil {
		switch status.Code(err) {
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("embed call failed: %w", err)
	}

	if len(resp.Vector) != c.dimension {
		return nil, fmt.Errorf("embedding service returned %d dimensions, expected %d",
			len(resp.Vector), c.dimension)
	}
	return resp.Vector, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error { return c.conn.Close() }
