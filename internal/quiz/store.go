package quiz

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record is one persisted quiz question row.
type Record struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Question    string         `json:"question"`
	Options     datatypes.JSON `json:"options"`
	NewsContext string         `json:"news_context"`
	Tags        datatypes.JSON `json:"tags"`
	Metadata    datatypes.JSON `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Record) TableName() string {
	return "daily_genai_quiz"
}

// Store writes generated questions to the quiz table.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewStore(db *gorm.DB, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}

// Insert shuffles the questions and writes one row per question, stamping
// metadata.content with the original news text. Each insert is independent:
// a failed row is logged and skipped, never aborting the rest of the batch.
// Repeated runs over the same content produce duplicate rows.
func (s *Store) Insert(ctx context.Context, questions []Question, content string) {
	shuffled := ShuffleOptions(questions)

	inserted := 0
	for i := range shuffled {
		shuffled[i].Metadata = map[string]interface{}{"content": content}

		record, err := toRecord(&shuffled[i])
		if err != nil {
			s.log.WithError(err).Errorf("[Store] failed to serialize question %d", i)
			continue
		}
		if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
			s.log.WithError(err).Errorf("[Store] failed to insert question %d", i)
			continue
		}
		inserted++
	}

	s.log.Infof("[Store] inserted %d/%d questions", inserted, len(shuffled))
}

func toRecord(q *Question) (*Record, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(q.Tags)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(q.Metadata)
	if err != nil {
		return nil, err
	}
	return &Record{
		ID:          uuid.New(),
		Question:    q.Question,
		Options:     options,
		NewsContext: q.NewsContext,
		Tags:        tags,
		Metadata:    metadata,
	}, nil
}
