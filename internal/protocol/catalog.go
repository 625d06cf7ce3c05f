package protocol

type Catalog struct {
	Streams []Stream `json:"streams"`
}

type Stream struct {
	Name                string         `json:"name"`
	JSONSchema          map[string]any `json:"json_schema"`
	SupportedSyncModes  []string       `json:"supported_sync_modes"`
	SourceDefinedCursor bool           `json:"source_defined_cursor"`
}

type Spec struct {
	DocumentationURL        string         `json:"documentationUrl,omitempty"`
	ConnectionSpecification map[string]any `json:"connectionSpecification"`
}

// DiscoverCatalog returns the fixed catalog. It does not depend on configuration.
func DiscoverCatalog() Catalog {
	return Catalog{
		Streams: []Stream{
			stream(StreamJobRoles, objectSchema(map[string]any{
				"title": str(),
			})),
			stream(StreamCompanies, objectSchema(map[string]any{
				"name":         str(),
				"linkedin_url": str(),
			})),
			stream(StreamJobOpenings, objectSchema(map[string]any{
				"job_description_url":                str(),
				"job_description_url_without_job_id": str(),
				"job_role":                           str(),
				"job_source":                         str(),
				"job_type":                           str(),
				"job_title":                          str(),
				"job_location":                       str(),
				"job_description_raw_text":           str(),
				"company":                            str(),
				"raw_response": objectSchema(map[string]any{
					"applicants": str(),
				}),
				"skills": objectSchema(map[string]any{
					"preferredSkills": map[string]any{
						"type":  []string{"null", "array"},
						"items": str(),
					},
				}),
				"min_ctc":        num(),
				"max_ctc":        num(),
				"min_experience": num(),
				"max_experience": num(),
				"hr_name":        str(),
				"department":     str(),
			})),
			stream(StreamRecruiterDetails, objectSchema(map[string]any{
				"short_intro":                 str(),
				"name":                        str(),
				"hiring_manager_for_job_link": str(),
				"company":                     str(),
				"linkedin_profile_url":        str(),
			})),
		},
	}
}

// ConnectorSpec describes the accepted configuration.
func ConnectorSpec() Spec {
	return Spec{
		DocumentationURL: "https://docs.airbyte.com/integrations/sources/linkedin-job-scrapper",
		ConnectionSpecification: map[string]any{
			"$schema":  "http://json-schema.org/draft-07/schema#",
			"title":    "Linkedin Job Scrapper Spec",
			"type":     "object",
			"required": []string{"job_role", "open_ai_api_key"},
			"properties": map[string]any{
				"job_role": map[string]any{
					"type":        "string",
					"description": `Role to search for. "dummy" and "Analyst" select built-in lists.`,
				},
				"open_ai_api_key": map[string]any{
					"type":           "string",
					"description":    "API key for the chat completion service.",
					"airbyte_secret": true,
				},
				"location":  map[string]any{"type": "string", "default": "India"},
				"job_type":  map[string]any{"type": "string", "enum": []string{"full_time", "part_time"}},
				"past_time": map[string]any{"type": "string", "enum": []string{"second", "day", "week", "month"}},
				"job_level": map[string]any{
					"type": "string",
					"enum": []string{"internship", "entry_level", "associate", "mid_senior_level", "director"},
				},
			},
		},
	}
}

func stream(name string, schema map[string]any) Stream {
	return Stream{
		Name:               name,
		JSONSchema:         schema,
		SupportedSyncModes: []string{"full_refresh"},
	}
}

func objectSchema(props map[string]any) map[string]any {
	return map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"type":       []string{"null", "object"},
		"properties": props,
	}
}

func str() map[string]any { return map[string]any{"type": []string{"null", "string"}} }
func num() map[string]any { return map[string]any{"type": []string{"null", "number"}} }
