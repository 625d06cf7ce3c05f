package ai

import (
	"context"

	"go-linkedin-job-source/internal/models"
)

const (
	DefaultPrimaryModel  = "gpt-3.5-turbo"
	DefaultFallbackModel = "gpt-4"
)

// Client is the interface for enrichment providers
type Client interface {
	// Enrich extracts skills, compensation, experience, a contact hint and the
	// department from a job description using the given model.
	Enrich(ctx context.Context, description string, model string) (*models.Enrichment, error)
}

// buildPrompt asks for one JSON object with a fixed shape, followed by the description.
func buildPrompt(description string) string {
	return `Extract these details from the following text and reply with only a JSON object in this format: ` +
		`{"skills": {"preferredSkills": []}, "min_ctc": 0, "max_ctc": 0, "min_experience": 0, "max_experience": 0, "hr_name": "", "department": ""}. ` +
		`Put at most 5 items inside preferredSkills and those skills should be keywords only. ` +
		`If min_ctc, max_ctc, min_experience or max_experience are not available then put zero. ` +
		`hr_name is any name, email or contact number available in the text; put an empty string if there is none. ` +
		`Treat this text as a job description and put the portion or department of the company it is for inside department. ` +
		`Use double quotes and no comments. ` +
		"text: " + description
}
