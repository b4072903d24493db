package main

import (
	"log"
	"os"
	"time"

	"frontera-be/internal/model"
	"frontera-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Admin Account...")

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@frontera.local"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using default. Change it before going live.")
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing admin password: %v", err)
		}
		hashStr := string(hash)
		now := time.Now()
		admin := model.User{
			Email:           adminEmail,
			PasswordHash:    &hashStr,
			FullName:        "Frontera Admin",
			Role:            "admin",
			Status:          "active",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Error creating admin user: %v", err)
		}
		color.Green("Created admin: %s", adminEmail)
	}

	color.Cyan("Seeding Knowledge Corpus Starters...")

	// A minimal starter corpus, one doc per research territory. Real
	// content is uploaded through the admin console, which also queues
	// the embedding job; these rows only make a fresh install usable.
	docs := []model.KnowledgeDoc{
		{
			Title:     "Reading Macro-Market Signals",
			Territory: "macroMarket",
			Source:    "frontera-playbook",
			Content: "Macro-market research looks outward at forces no single customer conversation reveals: " +
				"regulatory shifts, capital flows, substitute technologies and demographic change. " +
				"A useful signal names the force, the direction it is moving, and the window in which it matters. " +
				"Avoid trend lists; tie every signal to a decision the client could actually take.",
		},
		{
			Title:     "Customer Discovery Beyond the Sales Funnel",
			Territory: "customer",
			Source:    "frontera-playbook",
			Content: "Customer research in a strategy engagement is not win-loss analysis. " +
				"The goal is to surface the jobs customers are hiring the category for, where the current offer " +
				"over-serves and under-serves, and which segments are drifting toward alternatives. " +
				"Three well-chosen interviews beat thirty survey responses.",
		},
		{
			Title:     "Colleague Research: Mining Internal Conviction",
			Territory: "colleague",
			Source:    "frontera-playbook",
			Content: "Colleagues hold a distributed map of the business that leadership rarely assembles. " +
				"Ask where the organisation wins despite itself, which commitments everyone quietly doubts, " +
				"and what the front line would bet on if the decision were theirs. " +
				"Disagreement between functions is a finding, not a problem to smooth over.",
		},
	}

	for _, d := range docs {
		var found model.KnowledgeDoc
		if err := db.Where("title = ? AND territory = ?", d.Title, d.Territory).First(&found).Error; err == nil {
			color.Yellow("Doc '%s' already exists, skipping...", d.Title)
			continue
		}
		if err := db.Create(&d).Error; err != nil {
			color.Red("Error creating doc '%s': %v", d.Title, err)
		} else {
			color.Green("Created knowledge doc: %s [%s]", d.Title, d.Territory)
		}
	}

	color.Cyan("Seeding completed!")
}
