package server

import (
	"github.com/cloud-compass/compass/backend/internal/util"
	"github.com/cloud-compass/compass/backend/pkg/ai"
	oll "github.com/cloud-compass/compass/backend/pkg/ai/ollama"
	oai "github.com/cloud-compass/compass/backend/pkg/ai/openai"
	"github.com/cloud-compass/compass/backend/pkg/logger"
)

// newAIClient builds the AI backend selected via AI_ADAPTER. The default
// is an OpenAI-compatible endpoint; "ollama" switches to a local server.
func newAIClient() ai.AssetAIClient {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oll.NewAssetOllamaClient(oll.NewAssetOllamaClientParams{
			SummaryModel:    util.GetEnv("AI_SUMMARY_MODEL"),
			SuggestionModel: util.GetEnv("AI_SUGGEST_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return oai.NewAssetOpenAIClient(oai.NewAssetOpenAIClientParams{
			SummaryModel:    util.GetEnv("AI_SUMMARY_MODEL"),
			SuggestionModel: util.GetEnv("AI_SUGGEST_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}
