package embedding

// EmbeddingProvider turns text into a vector. taskType distinguishes
// document ingestion from query-time embedding; providers that do not
// support the hint ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
