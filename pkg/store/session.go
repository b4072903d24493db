package store

// Session is the in-memory working state of an active coaching session.
// It caches what would otherwise be rebuilt on every chat turn.
type Session struct {
	ID     string `json:"id"` // ConversationID
	UserID string `json:"user_id"`

	// SystemPrompt is the rendered coaching prompt for the current
	// framework state. Invalidated whenever the state document changes.
	SystemPrompt string `json:"system_prompt"`

	// StateVersion counts state mutations since the session started, so a
	// stale cached prompt can be detected cheaply.
	StateVersion int `json:"state_version"`

	// LastUserMessage is kept for conversational repair ("say that again").
	LastUserMessage string `json:"last_user_message"`
}
