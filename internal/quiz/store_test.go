package quiz

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testTableDDL = `CREATE TABLE daily_genai_quiz (
	id text PRIMARY KEY,
	question text CHECK (question <> ''),
	options text,
	news_context text,
	tags text,
	metadata text,
	created_at datetime
)`

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Exec(testTableDDL).Error; err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func TestInsert_WritesRowsWithContentMetadata(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, testLogger())

	store.Insert(context.Background(), sampleQuestions(), "sample news text")

	var records []Record
	if err := db.Find(&records).Error; err != nil {
		t.Fatalf("failed to read rows back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(records))
	}
	for _, r := range records {
		var metadata map[string]interface{}
		if err := json.Unmarshal(r.Metadata, &metadata); err != nil {
			t.Fatalf("metadata column is not valid JSON: %v", err)
		}
		if metadata["content"] != "sample news text" {
			t.Errorf("expected metadata.content to carry the news text, got %v", metadata["content"])
		}
		var options []Option
		if err := json.Unmarshal(r.Options, &options); err != nil {
			t.Fatalf("options column is not valid JSON: %v", err)
		}
		if len(options) != 4 {
			t.Errorf("expected 4 options in row, got %d", len(options))
		}
	}
}

func TestInsert_MetadataOverwritesExisting(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, testLogger())

	questions := sampleQuestions()[:1] // carries metadata{"source":"scrape"}
	store.Insert(context.Background(), questions, "fresh content")

	var record Record
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("failed to read row back: %v", err)
	}
	var metadata map[string]interface{}
	if err := json.Unmarshal(record.Metadata, &metadata); err != nil {
		t.Fatalf("metadata column is not valid JSON: %v", err)
	}
	if _, ok := metadata["source"]; ok {
		t.Errorf("expected prior metadata to be overwritten, still present: %v", metadata)
	}
	if metadata["content"] != "fresh content" {
		t.Errorf("expected metadata.content, got %v", metadata["content"])
	}
}

func TestInsert_FailingRowDoesNotShortCircuit(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, testLogger())

	questions := sampleQuestions()
	// The empty question text violates the table's CHECK constraint.
	bad := Question{Question: "", Options: []Option{{Text: "A", Correct: "true"}}}
	batch := []Question{questions[0], bad, questions[1]}

	store.Insert(context.Background(), batch, "content")

	var count int64
	if err := db.Model(&Record{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 2 {
		t.Errorf("expected the 2 valid rows despite a failing one, got %d", count)
	}
}

func TestInsert_DuplicateRunsProduceDuplicateRows(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, testLogger())

	questions := sampleQuestions()[:1]
	store.Insert(context.Background(), questions, "same content")
	store.Insert(context.Background(), questions, "same content")

	var count int64
	if err := db.Model(&Record{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 2 {
		t.Errorf("expected duplicate rows across runs, got %d", count)
	}
}
