// Package openai implements ai.AssetAIClient against any
// OpenAI-compatible chat completion API.
package openai

import (
	"sync"

	"github.com/cloud-compass/compass/backend/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// AssetOpenAIClient talks to an OpenAI-compatible endpoint. It uses one
// model for free-text summaries and one for structured suggestion
// extraction; both default to the same model when only one is configured.
//
// Create it with NewAssetOpenAIClient.
type AssetOpenAIClient struct {
	summaryModel    string
	suggestionModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewAssetOpenAIClientParams configures a new AssetOpenAIClient.
//
// SummaryModel is used for natural-language posture summaries,
// SuggestionModel for schema-enforced relationship suggestions. ChatURL
// may be empty for the public OpenAI endpoint.
type NewAssetOpenAIClientParams struct {
	SummaryModel    string
	SuggestionModel string

	ChatURL string
	ChatKey string
}

// NewAssetOpenAIClient creates a client from the given parameters.
//
// Example:
//
//	client := openai.NewAssetOpenAIClient(openai.NewAssetOpenAIClientParams{
//		SummaryModel:    "gpt-4o-mini",
//		SuggestionModel: "gpt-4o-mini",
//		ChatKey:         os.Getenv("OPENAI_API_KEY"),
//	})
func NewAssetOpenAIClient(
	params NewAssetOpenAIClientParams,
) *AssetOpenAIClient {
	if params.SuggestionModel == "" {
		params.SuggestionModel = params.SummaryModel
	}

	return &AssetOpenAIClient{
		summaryModel:    params.SummaryModel,
		suggestionModel: params.SuggestionModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

func (c *AssetOpenAIClient) modifyMetrics(delta ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += delta.InputTokens
	c.metrics.OutputTokens += delta.OutputTokens
	c.metrics.TotalTokens += delta.TotalTokens
	c.metrics.DurationMs += delta.DurationMs
}

// GetMetrics returns the accumulated usage metrics of this client.
func (c *AssetOpenAIClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}
