package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-linkedin-job-source/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedReply is returned when a completion is not the expected JSON object.
var ErrMalformedReply = errors.New("malformed enrichment reply")

const maxSkills = 5

const enrichmentSchemaJSON = `{
  "type": "object",
  "required": ["skills", "min_ctc", "max_ctc", "min_experience", "max_experience", "hr_name", "department"],
  "properties": {
    "skills": {
      "type": "object",
      "required": ["preferredSkills"],
      "properties": {
        "preferredSkills": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "min_ctc": {"type": ["number", "null"]},
    "max_ctc": {"type": ["number", "null"]},
    "min_experience": {"type": ["number", "null"]},
    "max_experience": {"type": ["number", "null"]},
    "hr_name": {"type": ["string", "null"]},
    "department": {"type": ["string", "null"]}
  }
}`

var enrichmentSchema = jsonschema.MustCompileString("enrichment.json", enrichmentSchemaJSON)

// ParseEnrichment validates a completion against the enrichment shape and
// decodes it. Nulls become zero values and skills are capped at five.
func ParseEnrichment(text string) (*models.Enrichment, error) {
	content := cleanMarkdownJSON(text)

	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if err := enrichmentSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	var e models.Enrichment
	if err := json.Unmarshal([]byte(content), &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(e.Skills.PreferredSkills) > maxSkills {
		e.Skills.PreferredSkills = e.Skills.PreferredSkills[:maxSkills]
	}
	if e.Skills.PreferredSkills == nil {
		e.Skills.PreferredSkills = []string{}
	}
	return &e, nil
}

// cleanMarkdownJSON removes backticks and "json" prefix if the model wraps its answer
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
