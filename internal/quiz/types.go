package quiz

// Option is one candidate answer. Correct carries the model's literal
// "true"/"false" flag rather than a bool, matching the stored wire shape.
type Option struct {
	Text    string `json:"text"`
	Correct string `json:"correct"`
}

// Question is one generated multiple-choice question. Options holds exactly
// four entries when the model follows instructions.
type Question struct {
	Question    string                 `json:"question"`
	Options     []Option               `json:"options"`
	NewsContext string                 `json:"news_context,omitempty"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// QuestionList is the wrapped response shape requested from the model.
// A bare JSON array response is coerced into it during parsing.
type QuestionList struct {
	Questions []Question `json:"questions"`
}

// CorrectCount returns how many options are flagged correct.
func (q *Question) CorrectCount() int {
	n := 0
	for _, o := range q.Options {
		if o.Correct == "true" {
			n++
		}
	}
	return n
}
