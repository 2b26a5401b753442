package openai

import (
	"fmt"
	"strings"
)

const recommendationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string"
          },
          "relevance_score": {
            "type": "integer",
            "minimum": 1,
            "maximum": 100
          },
          "match_reason": {
            "type": "string"
          }
        },
        "required": ["name", "relevance_score", "match_reason"],
        "additionalProperties": false
      }
    }
  },
  "required": ["recommendations"],
  "additionalProperties": false
}`

const recommendationPromptTemplate = `You are a law librarian. Given a legal research question, pick the most relevant
resources from the allowed list below and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The "name" field must be copied verbatim from the allowed resource list. Never invent a resource.
- "relevance_score" is an integer from 1 (marginal) to 100 (certain match). Rate based on how directly the resource answers the question.
- "match_reason" is one short sentence explaining why the resource fits.
- Recommend at most 8 resources. Fewer confident picks are better than many weak ones.
- If nothing in the list fits, return "recommendations": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Allowed resources:
%s

Example:
Input: "How do I find Utah case law on contract disputes?"
Output:
{
  "recommendations": [
    {"name":"Westlaw Edge","relevance_score":92,"match_reason":"Primary case law database with Utah state coverage."},
    {"name":"LexisNexis","relevance_score":85,"match_reason":"Alternative full-text case law research platform."}
  ]
}`

// buildSystemPrompt creates the system prompt with the candidate allowlist embedded.
func buildSystemPrompt(candidates []string) string {
	return fmt.Sprintf(recommendationPromptTemplate,
		recommendationResponseSchema,
		"- "+strings.Join(candidates, "\n- "))
}
