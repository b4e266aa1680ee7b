package cache

import (
	"crypto/sha1"
	"fmt"
	"time"
)

const (
	// ResponseTTL keeps generation responses long enough to resume an
	// interrupted batch without repaying for finished articles.
	ResponseTTL = 7 * 24 * time.Hour
)

// ResponseKey generates the Redis key for one generation response.
// The prompt is hashed so prompt length never matters to the key.
func ResponseKey(model, prompt string, maxTokens int) string {
	hash := sha1.Sum([]byte(fmt.Sprintf("%s|%d|%s", model, maxTokens, prompt)))
	return fmt.Sprintf("llm:resp:v1:%x", hash)
}
