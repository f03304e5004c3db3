// Package insight implements the AI flows of the dashboard: a
// natural-language posture summary for a single asset, and suggested
// relationships inferred from asset metadata. It builds the prompts,
// bounds the metadata they embed, retries transient failures, and wraps
// everything the model surface can throw into *RequestError.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloud-compass/compass/backend/internal/util"
	"github.com/cloud-compass/compass/backend/pkg/ai"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

// RequestError reports a failed or unusable AI collaborator call. It is
// surfaced to the user per-component and is never fatal to the rest of
// the service.
type RequestError struct {
	AssetID string
	Op      string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ai %s request for asset %q failed: %v", e.Op, e.AssetID, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Suggestion is one AI-proposed relationship from the analyzed asset to
// another asset. RelationshipType is an open string; RiskScore is clamped
// to [0,1].
type Suggestion struct {
	ToAssetID        string  `json:"toAssetId"`
	RelationshipType string  `json:"relationshipType"`
	RiskScore        float64 `json:"riskScore"`
	Reason           string  `json:"reason"`
}

// suggestionResponse wraps the suggestion list because structured output
// requires an object at the top level.
type suggestionResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Analyzer runs the AI flows against a configured client.
type Analyzer struct {
	client        ai.AssetAIClient
	maxRetries    int
	metadataLimit int
}

// AnalyzerParams configures an Analyzer. MetadataTokenBudget bounds the
// serialized asset data embedded into prompts; MaxRetries bounds attempts
// per call.
type AnalyzerParams struct {
	MaxRetries          int
	MetadataTokenBudget int
}

// NewAnalyzer creates an Analyzer using the given AI client.
func NewAnalyzer(client ai.AssetAIClient, params AnalyzerParams) *Analyzer {
	if params.MaxRetries <= 0 {
		params.MaxRetries = 2
	}
	if params.MetadataTokenBudget <= 0 {
		params.MetadataTokenBudget = 4096
	}
	return &Analyzer{
		client:        client,
		maxRetries:    params.MaxRetries,
		metadataLimit: params.MetadataTokenBudget,
	}
}

// SummarizeAsset generates a 2-3 sentence security posture summary for
// the asset.
func (a *Analyzer) SummarizeAsset(ctx context.Context, asset model.Asset) (string, error) {
	payload := map[string]any{
		"id":        asset.ID,
		"type":      asset.Type,
		"name":      asset.Name,
		"metadata":  asset.Metadata,
		"riskScore": asset.RiskScore,
		"tags":      asset.Tags,
	}
	assetJSON, err := a.promptData(payload)
	if err != nil {
		return "", &RequestError{AssetID: asset.ID, Op: "summary", Err: err}
	}

	prompt := fmt.Sprintf(summaryPrompt, assetJSON)
	summary, err := util.RetryWithContext(ctx, a.maxRetries, func(ctx context.Context) (string, error) {
		return a.client.GenerateCompletion(ctx, prompt)
	})
	if err != nil {
		return "", &RequestError{AssetID: asset.ID, Op: "summary", Err: err}
	}

	summary = strings.Join(strings.Fields(summary), " ")
	if summary == "" {
		return "", &RequestError{AssetID: asset.ID, Op: "summary", Err: fmt.Errorf("model returned no usable summary")}
	}
	return summary, nil
}

// SuggestRelationships asks the model for potential risk relationships
// from the given asset. The returned suggestions keep the model's order;
// the caller decides which, if any, to accept.
func (a *Analyzer) SuggestRelationships(ctx context.Context, assetID string, metadata map[string]any) ([]Suggestion, error) {
	metaJSON, err := a.promptData(metadata)
	if err != nil {
		return nil, &RequestError{AssetID: assetID, Op: "suggest", Err: err}
	}

	prompt := fmt.Sprintf(suggestPrompt, assetID, metaJSON)
	resp, err := util.RetryWithContext(ctx, a.maxRetries, func(ctx context.Context) (suggestionResponse, error) {
		var out suggestionResponse
		err := a.client.GenerateCompletionWithFormat(
			ctx,
			"relationship_suggestions",
			"Suggested relationships from the analyzed asset to other assets, with risk scores and reasons.",
			prompt,
			&out,
		)
		return out, err
	})
	if err != nil {
		return nil, &RequestError{AssetID: assetID, Op: "suggest", Err: err}
	}

	suggestions := resp.Suggestions
	for i := range suggestions {
		if suggestions[i].RiskScore < 0 {
			suggestions[i].RiskScore = 0
		}
		if suggestions[i].RiskScore > 1 {
			suggestions[i].RiskScore = 1
		}
	}
	return suggestions, nil
}

func (a *Analyzer) promptData(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize asset data: %w", err)
	}
	return ai.TruncateTokens(string(data), a.metadataLimit)
}
