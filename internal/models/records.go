package models

const (
	JobSource = "linkedin"
	JobType   = "full-time"
)

// RoleMarker records that a role was attempted, whatever the outcome.
type RoleMarker struct {
	Title string `json:"title"`
}

type Company struct {
	Name        string `json:"name,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// RawResponse carries page text that has no dedicated column.
type RawResponse struct {
	Applicants string `json:"applicants"`
}

type Skills struct {
	PreferredSkills []string `json:"preferredSkills"`
}

// Enrichment is the structured reply of the language model.
type Enrichment struct {
	Skills        Skills  `json:"skills"`
	MinCTC        float64 `json:"min_ctc"`
	MaxCTC        float64 `json:"max_ctc"`
	MinExperience float64 `json:"min_experience"`
	MaxExperience float64 `json:"max_experience"`
	HRName        string  `json:"hr_name"`
	Department    string  `json:"department"`
}

// NormalizeExperience raises an inverted max experience to the minimum.
func (e *Enrichment) NormalizeExperience() {
	if e.MaxExperience < e.MinExperience {
		e.MaxExperience = e.MinExperience
	}
}

// Job accumulates fields as each extraction stage succeeds. Fields that were
// never reached stay empty and are left out of the emitted record.
type Job struct {
	URL             string       `json:"job_description_url"`
	URLWithoutJobID string       `json:"job_description_url_without_job_id"`
	Role            string       `json:"job_role"`
	Source          string       `json:"job_source"`
	Type            string       `json:"job_type"`
	Title           string       `json:"job_title,omitempty"`
	Location        string       `json:"job_location,omitempty"`
	RawResponse     *RawResponse `json:"raw_response,omitempty"`
	Description     string       `json:"job_description_raw_text,omitempty"`
	Company         string       `json:"company,omitempty"`

	// nil until enrichment succeeds; the fields flatten into the record
	*Enrichment
}

func NewJob(url, role string) *Job {
	return &Job{
		URL:             url,
		URLWithoutJobID: url,
		Role:            role,
		Source:          JobSource,
		Type:            JobType,
	}
}

type Recruiter struct {
	ShortIntro         string `json:"short_intro"`
	Name               string `json:"name"`
	HiringManagerFor   string `json:"hiring_manager_for_job_link"`
	Company            string `json:"company"`
	LinkedInProfileURL string `json:"linkedin_profile_url"`
}

// NewRecruiter builds the recruiter record. LinkedIn does not expose the
// profile link publicly, so a stable placeholder identifier is used instead.
func NewRecruiter(name, intro, jobURL, company string) Recruiter {
	return Recruiter{
		ShortIntro:         intro,
		Name:               name,
		HiringManagerFor:   jobURL,
		Company:            company,
		LinkedInProfileURL: "dummy_" + name + "_" + company,
	}
}
