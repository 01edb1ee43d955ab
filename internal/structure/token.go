package structure

// EstimateTokens approximates downstream LLM context cost at a fixed
// 4 characters per token, rounded up. Exact tokenization is deliberately out
// of scope; this only needs to be deterministic and monotonic in length.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
