package main

import (
	"log"
	"os"

	"frontera-be/internal/model"
	"frontera-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: extensions GORM AutoMigrate cannot create
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.EmailVerificationToken{},
		&model.UserProvider{},
		&model.Application{},
		&model.Conversation{},
		&model.ConversationMessage{},
		&model.Assessment{},
		&model.StrategicBet{},
		&model.StrategicThesis{},
		&model.KnowledgeDoc{},
		&model.KnowledgeEmbedding{},
		&model.EnrollmentInvoice{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: similarity-search index
	log.Println("Step 3: Creating Indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_knowledge_embeddings_cosine
		 ON knowledge_embeddings USING hnsw (embedding_value vector_cosine_ops);`,

		`CREATE OR REPLACE VIEW territory_corpus_summary AS
		 SELECT kd.territory, COUNT(DISTINCT kd.id) AS doc_count, COUNT(ke.id) AS chunk_count
		 FROM knowledge_docs kd
		 LEFT JOIN knowledge_embeddings ke ON kd.id = ke.knowledge_doc_id
		 WHERE kd.deleted_at IS NULL
		 GROUP BY kd.territory;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Migration completed successfully.")
}
