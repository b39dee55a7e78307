package outbound

import "context"

// GenerationParams tunes a single text-generation request
type GenerationParams struct {
	MaxNewTokens int
	Temperature  float64
	TopP         float64
	DoSample     bool
}

// DefaultGenerationParams are the parameters used by the coaching
// pipeline unless a caller overrides them
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxNewTokens: 1000,
		Temperature:  0.7,
		TopP:         0.9,
		DoSample:     true,
	}
}

// InferenceClient defines the interface to the external text-generation
// endpoint. Implementations must return the raw generated text without
// interpretation; parsing happens in the application layer. Transport
// failures, timeouts and non-2xx responses surface as errors, never as
// fabricated text.
type InferenceClient interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
