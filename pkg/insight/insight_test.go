package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloud-compass/compass/backend/pkg/ai"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

type fakeAIClient struct {
	completion    string
	completionErr error
	structured    string
	structuredErr error

	completionCalls int
	structuredCalls int
	lastPrompt      string
}

func (f *fakeAIClient) GenerateCompletion(_ context.Context, prompt string, _ ...ai.GenerateOption) (string, error) {
	f.completionCalls++
	f.lastPrompt = prompt
	return f.completion, f.completionErr
}

func (f *fakeAIClient) GenerateCompletionWithFormat(_ context.Context, _, _, prompt string, out any, _ ...ai.GenerateOption) error {
	f.structuredCalls++
	f.lastPrompt = prompt
	if f.structuredErr != nil {
		return f.structuredErr
	}
	return ai.UnmarshalFlexible(f.structured, out)
}

func (f *fakeAIClient) GetMetrics() ai.ModelMetrics {
	return ai.ModelMetrics{}
}

func testAsset() model.Asset {
	return model.Asset{
		ID:        "sg-web",
		Type:      model.AssetTypeSecurityGroup,
		Name:      "web-access-sg",
		Metadata:  map[string]any{"description": "Allows HTTP and HTTPS access"},
		RiskScore: 0.8,
		Tags:      []string{"security", "web"},
	}
}

func TestSummarizeAsset_NormalizesWhitespace(t *testing.T) {
	client := &fakeAIClient{completion: "  A public security group.\n\nIt exposes ports 80 and 443.  "}
	analyzer := NewAnalyzer(client, AnalyzerParams{})

	summary, err := analyzer.SummarizeAsset(context.Background(), testAsset())
	if err != nil {
		t.Fatalf("SummarizeAsset() error = %v", err)
	}
	want := "A public security group. It exposes ports 80 and 443."
	if summary != want {
		t.Fatalf("SummarizeAsset() = %q, want %q", summary, want)
	}
	if !strings.Contains(client.lastPrompt, `"sg-web"`) {
		t.Fatalf("prompt does not embed the asset data: %s", client.lastPrompt)
	}
}

func TestSummarizeAsset_WrapsFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeAIClient
	}{
		{name: "call failed", client: &fakeAIClient{completionErr: errors.New("upstream 503")}},
		{name: "empty result", client: &fakeAIClient{completion: "   "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analyzer := NewAnalyzer(tc.client, AnalyzerParams{MaxRetries: 1})
			_, err := analyzer.SummarizeAsset(context.Background(), testAsset())

			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("SummarizeAsset() error = %v, want *RequestError", err)
			}
			if reqErr.AssetID != "sg-web" {
				t.Fatalf("RequestError.AssetID = %q, want sg-web", reqErr.AssetID)
			}
		})
	}
}

func TestSummarizeAsset_RetriesTransientFailures(t *testing.T) {
	client := &fakeAIClient{completionErr: errors.New("transient")}
	analyzer := NewAnalyzer(client, AnalyzerParams{MaxRetries: 3})

	if _, err := analyzer.SummarizeAsset(context.Background(), testAsset()); err == nil {
		t.Fatal("SummarizeAsset() expected error, got nil")
	}
	if client.completionCalls != 3 {
		t.Fatalf("completion calls = %d, want 3", client.completionCalls)
	}
}

func TestSuggestRelationships_ParsesAndClamps(t *testing.T) {
	client := &fakeAIClient{structured: `{
		"suggestions": [
			{"toAssetId":"vpc-01","relationshipType":"depends_on","riskScore":0.6,"reason":"resides in this network"},
			{"toAssetId":"user-001","relationshipType":"can_access","riskScore":1.7,"reason":"admin scope"}
		]
	}`}
	analyzer := NewAnalyzer(client, AnalyzerParams{})

	got, err := analyzer.SuggestRelationships(context.Background(), "sg-web", map[string]any{"description": "x"})
	if err != nil {
		t.Fatalf("SuggestRelationships() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("suggestions len = %d, want 2", len(got))
	}
	if got[0].ToAssetID != "vpc-01" || got[0].RelationshipType != "depends_on" || got[0].RiskScore != 0.6 {
		t.Fatalf("first suggestion = %+v", got[0])
	}
	if got[1].RiskScore != 1 {
		t.Fatalf("out-of-range risk score not clamped: %v", got[1].RiskScore)
	}
}

func TestSuggestRelationships_ToleratesMalformedJSON(t *testing.T) {
	client := &fakeAIClient{structured: `{suggestions: [{toAssetId: 'vpc-01', relationshipType: 'uses', riskScore: 0.2, reason: 'shared subnet'},]}`}
	analyzer := NewAnalyzer(client, AnalyzerParams{})

	got, err := analyzer.SuggestRelationships(context.Background(), "sg-web", nil)
	if err != nil {
		t.Fatalf("SuggestRelationships() error = %v", err)
	}
	if len(got) != 1 || got[0].ToAssetID != "vpc-01" {
		t.Fatalf("suggestions = %+v, want one for vpc-01", got)
	}
}

func TestSuggestRelationships_WrapsFailure(t *testing.T) {
	client := &fakeAIClient{structuredErr: errors.New("schema rejected")}
	analyzer := NewAnalyzer(client, AnalyzerParams{MaxRetries: 1})

	_, err := analyzer.SuggestRelationships(context.Background(), "sg-web", nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("SuggestRelationships() error = %v, want *RequestError", err)
	}
}
