package ai

import (
	"github.com/pkoukk/tiktoken-go"
)

const tokenEncoding = "o200k_base"

// TruncateTokens cuts text down to at most maxTokens tokens. Asset
// metadata is caller-supplied and unbounded, so prompts embedding it are
// trimmed to a fixed budget before they go to the model.
func TruncateTokens(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return text, nil
	}

	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return "", err
	}

	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, nil
	}
	return enc.Decode(tokens[:maxTokens]), nil
}

// CountTokens returns the token count of text under the prompt encoding.
func CountTokens(text string) (int, error) {
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}
