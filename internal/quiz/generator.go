package quiz

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"newsquiz/internal/llm"
)

// QuestionStore persists a batch of questions. Satisfied by *Store.
type QuestionStore interface {
	Insert(ctx context.Context, questions []Question, content string)
}

// Generator turns news content into quiz questions with a single model call
// and hands any non-empty result straight to the store.
type Generator struct {
	client *llm.Client
	store  QuestionStore
	log    *logrus.Logger
}

func NewGenerator(client *llm.Client, store QuestionStore, log *logrus.Logger) *Generator {
	return &Generator{client: client, store: store, log: log}
}

// Generate asks the model for numQuestions questions about content. Model and
// parse failures are contained here: the pipeline always gets a (possibly
// empty) slice, never an error.
func (g *Generator) Generate(ctx context.Context, content string, numQuestions int) []Question {
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(content, numQuestions)},
	}

	raw, err := g.client.ChatCompletion(ctx, messages, 0.7)
	if err != nil {
		g.log.WithError(err).Error("[Generator] error generating quiz questions")
		return []Question{}
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		g.log.WithError(err).Errorf("[Generator] failed to parse model response:\n%s", raw)
		return []Question{}
	}

	for i := range questions {
		if n := questions[i].CorrectCount(); n != 1 {
			g.log.Warnf("[Generator] question %d has %d options flagged correct, keeping anyway", i, n)
		}
	}

	g.log.Infof("[Generator] generated %d questions", len(questions))

	if len(questions) > 0 {
		g.store.Insert(ctx, questions, content)
	}

	return questions
}

// parseQuestions decodes the model output, tolerating markdown code fences
// and a bare top-level array in place of the wrapped shape.
func parseQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var list QuestionList
	if err := json.Unmarshal([]byte(clean), &list); err == nil && list.Questions != nil {
		return list.Questions, nil
	}

	var bare []Question
	if err := json.Unmarshal([]byte(clean), &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
