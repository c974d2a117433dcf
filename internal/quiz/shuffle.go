package quiz

import "math/rand"

// ShuffleOptions returns a copy of each question with its options uniformly
// permuted. The caller's questions are never mutated, so a saved reference to
// the input stays in the model's original order.
func ShuffleOptions(questions []Question) []Question {
	shuffled := make([]Question, 0, len(questions))
	for _, q := range questions {
		c := copyQuestion(q)
		rand.Shuffle(len(c.Options), func(i, j int) {
			c.Options[i], c.Options[j] = c.Options[j], c.Options[i]
		})
		shuffled = append(shuffled, c)
	}
	return shuffled
}

func copyQuestion(q Question) Question {
	c := q
	c.Options = make([]Option, len(q.Options))
	copy(c.Options, q.Options)
	if q.Tags != nil {
		c.Tags = make([]string, len(q.Tags))
		copy(c.Tags, q.Tags)
	}
	if q.Metadata != nil {
		c.Metadata = make(map[string]interface{}, len(q.Metadata))
		for k, v := range q.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}
