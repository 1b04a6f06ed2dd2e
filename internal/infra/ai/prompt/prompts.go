package prompt

import "fmt"

// PromptsSystem provides strict directions and schema for JSON output.
func PromptsSystem() string {
	return `You are a LinkedIn content coach. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object with a "prompts" array.
- Each item has "prompt" (main post content direction), "hook" (attention-grabbing opening) and "style".
- "style" is one of: First-Person Anecdotes, Listicles, Educational, Thought Leadership, Case Studies, Questions.
- Keep items concise and actionable.

Schema (example with empty values):
{
  "prompts": [
    {"prompt": "<string>", "hook": "<string>", "style": "<string>"}
  ]
}`
}

// PromptsUser builds the user message around the stored strategy.
func PromptsUser(strategy string, count int) string {
	return fmt.Sprintf("Generate %d LinkedIn post prompts based on this strategy and respond with the JSON per schema:\n\n%s", count, strategy)
}
