package models

import "strings"

// Project.Technologies is stored as a comma-separated string and round-trips
// verbatim through the admin API. These two functions are the only place the
// encoding is interpreted, so a structured representation can replace it
// without touching callers.

func ParseTechnologies(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	technologies := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			technologies = append(technologies, trimmed)
		}
	}

	return technologies
}

func JoinTechnologies(technologies []string) string {
	return strings.Join(technologies, ",")
}
