package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/mapper"
	"crossword-collab-be/pkg/crossword"
	"crossword-collab-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds the puzzle catalog from JSON documents. Each file under the puzzles
// directory holds one crossword.Document; files whose title already exists
// are skipped so reruns are safe.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	puzzleDir := os.Getenv("PUZZLE_SEED_DIR")
	if puzzleDir == "" {
		puzzleDir = "seeds/puzzles"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	paths, err := filepath.Glob(filepath.Join(puzzleDir, "*.json"))
	if err != nil {
		log.Fatalf("Error: Failed to list puzzle files: %v", err)
	}
	if len(paths) == 0 {
		color.Yellow("No puzzle files found under %s, nothing to do", puzzleDir)
		return
	}

	color.Cyan("Seeding %d puzzle file(s) from %s...", len(paths), puzzleDir)

	puzzleMapper := mapper.NewPuzzleMapper()
	seeded := 0

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			color.Red("Skipping %s: %v", path, err)
			continue
		}

		var doc crossword.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			color.Red("Skipping %s: invalid JSON: %v", path, err)
			continue
		}
		if err := doc.Validate(); err != nil {
			color.Red("Skipping %s: invalid puzzle: %v", path, err)
			continue
		}

		var count int64
		if err := db.Table("puzzles").Where("title = ?", doc.Title).Count(&count).Error; err != nil {
			color.Red("Skipping %s: lookup failed: %v", path, err)
			continue
		}
		if count > 0 {
			color.Yellow("Puzzle '%s' already exists, skipping...", doc.Title)
			continue
		}

		puzzle := &entity.Puzzle{
			Id:        uuid.New(),
			Title:     doc.Title,
			Rows:      doc.Rows,
			Cols:      doc.Cols,
			Document:  doc,
			CreatedAt: time.Now(),
		}

		m, err := puzzleMapper.ToModel(puzzle)
		if err != nil {
			color.Red("Skipping %s: %v", path, err)
			continue
		}

		if err := db.Create(m).Error; err != nil {
			color.Red("Failed to insert '%s': %v", doc.Title, err)
			continue
		}

		color.Green("Seeded puzzle: %s (%dx%d)", doc.Title, doc.Rows, doc.Cols)
		seeded++
	}

	color.Cyan("Puzzle seeding completed: %d inserted", seeded)
}
