package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admin dashboard DTOs ---

type AdminStatsResponse struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveUsers         int64            `json:"active_users"`
	ApplicationsByState map[string]int64 `json:"applications_by_state"`
	TotalConversations  int64            `json:"total_conversations"`
	TotalAssessments    int64            `json:"total_assessments"`
}

// --- System log DTOs ---

// LogListResponse uses string ids because log entries are identified by
// content hash, not UUID.
type LogListResponse struct {
	Id        string `json:"id"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

// --- Knowledge corpus DTOs ---

type UploadKnowledgeDocRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Territory string `json:"territory" validate:"required,max=100"`
	Content   string `json:"content" validate:"required"`
	Source    string `json:"source,omitempty"`
}

// EmbedKnowledgeDocMessage is the payload published to the ingest topic when
// a knowledge doc is created or its content changes.
type EmbedKnowledgeDocMessage struct {
	KnowledgeDocId uuid.UUID `json:"knowledge_doc_id"`
}

type KnowledgeDocResponse struct {
	Id         string    `json:"id"`
	Title      string    `json:"title"`
	Territory  string    `json:"territory"`
	Source     string    `json:"source,omitempty"`
	ChunkCount int64     `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}
