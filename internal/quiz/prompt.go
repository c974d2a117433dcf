package quiz

import "fmt"

const systemPrompt = `You generate context-based multiple-choice quiz questions from AI news content.

Guidelines:

1. Question Structure:
   Each question must include a brief context or background related to the news item.
   Ensure the question text references specific details from the news to make it engaging and informative.

   Example Question:

   Nobel laureates Geoffrey Hinton and Demis Hassabis have emphasized the need for strong regulation of artificial intelligence (AI). Geoffrey Hinton, who recently warned of AI potentially surpassing human intelligence, was awarded the Nobel Prize in Physics for his work on what key AI technology?

2. Answer Options:
   Provide four distinct multiple-choice options, including only one correct answer.
   Ensure the incorrect options are plausible but clearly distinguishable from the correct answer.

   Example Options:
   - Advanced robotics
   - Artificial neural networks
   - Quantum computing
   - Machine learning frameworks

3. Correct Answer:
   Clearly identify the correct answer in the response.

4. News Context:
   Include a short "news_context" for each question, summarizing the relevant news item.

5. Variety:
   Focus on unique aspects of the content to ensure a variety of topics and perspectives in the questions.

Questions should be elaborative, incorporating relevant background or situational details from the news to enhance understanding.

Expected JSON format (return pure, valid JSON with no text outside the JSON):

{
  "questions": [
    {
      "question": "<question text referencing the news>",
      "options": [
        {"text": "<option text>", "correct": "true"},
        {"text": "<option text>", "correct": "false"},
        {"text": "<option text>", "correct": "false"},
        {"text": "<option text>", "correct": "false"}
      ],
      "news_context": "<short summary of the relevant news item>",
      "tags": ["<topic tag>"],
      "metadata": {}
    }
  ]
}

Each question must have exactly 4 options with exactly one marked "true".`

func buildUserPrompt(content string, numQuestions int) string {
	return fmt.Sprintf(
		"Generate %d context-based multiple-choice quiz questions from the following news content:\n\n%s\n\n"+
			"Please ensure the variety and elaboration make the questions engaging and informative.",
		numQuestions, content,
	)
}
