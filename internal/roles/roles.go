package roles

const (
	// DeveloperToken selects the built-in developer role list.
	DeveloperToken = "dummy"
	// AnalystToken selects the built-in analyst keyword list.
	AnalystToken = "Analyst"
)

// Resolve expands the configured job_role into the list of roles to search.
// Any value other than the two tokens is searched as-is.
func Resolve(configRole string) []string {
	switch configRole {
	case DeveloperToken:
		return clone(developerRoles)
	case AnalystToken:
		return clone(analystKeywords)
	default:
		return []string{configRole}
	}
}

func clone(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
