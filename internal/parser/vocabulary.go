package parser

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultVocabulary is the built-in list of technology names probed by
// whole-word match against the résumé text. Casing here is the canonical
// casing reported on the candidate. Edit freely or load a replacement with
// LoadVocabulary.
var DefaultVocabulary = []string{
	"Java", "Python", "JavaScript", "C++", "C#", "PHP", "Ruby", "Go", "Kotlin", "Swift",
	"React", "Angular", "Vue", "Node.js", "Express", "Spring", "Django", "Flask", "Laravel",
	"HTML", "CSS", "Bootstrap", "Tailwind", "SASS", "LESS",
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "SQL Server",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "Linux", "Windows",
	"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	"Agile", "Scrum", "DevOps", "CI/CD", "REST", "GraphQL", "Microservices", "API",
}

// LoadVocabulary reads a skill vocabulary from a JSON array of strings, for
// deployments that maintain their own list.
func LoadVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return skills, nil
}
