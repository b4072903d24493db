package constant

// Logger module names.
const (
	ModuleAuth       = "auth"
	ModuleCoaching   = "coaching"
	ModuleSuggestion = "suggestion"
	ModuleAssessment = "assessment"
	ModuleBets       = "bets"
	ModuleAdmin      = "admin"
	ModuleBilling    = "billing"
	ModuleKnowledge  = "knowledge"
)

// Embedding task types (Gemini text-embedding-004 vocabulary).
const (
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeQuery    = "RETRIEVAL_QUERY"
)

// Knowledge chunking. Roughly 375 tokens per chunk with boundary overlap.
const (
	KnowledgeChunkSize    = 1500
	KnowledgeChunkOverlap = 200
)

// Suggestion cache.
const (
	SuggestionCacheTTLSeconds = 600
)
