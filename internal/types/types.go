package types

// ResumeFields holds the free-text field values a caller supplies for
// template rendering. All fields are optional; missing values render as
// empty strings.
type ResumeFields struct {
	Name       string `json:"name"`
	JobRole    string `json:"jobRole"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Links      string `json:"links"`
}

// Map returns the fields keyed by their template placeholder names.
func (f ResumeFields) Map() map[string]string {
	return map[string]string{
		"name":       f.Name,
		"job_role":   f.JobRole,
		"summary":    f.Summary,
		"skills":     f.Skills,
		"experience": f.Experience,
		"education":  f.Education,
		"email":      f.Email,
		"phone":      f.Phone,
		"location":   f.Location,
		"links":      f.Links,
	}
}

// EnhanceContentInput represents the input for AI content enhancement
type EnhanceContentInput struct {
	Content string `json:"content"`
	JobRole string `json:"jobRole"`
}

// EnhanceContentOutput represents the output from AI content enhancement
type EnhanceContentOutput struct {
	EnhancedContent string `json:"enhancedContent"`
	Explanation     string `json:"explanation"`
}

// SuggestKeywordsInput represents the input for AI keyword extraction
type SuggestKeywordsInput struct {
	JobDescription string `json:"jobDescription"`
}

// SuggestKeywordsOutput represents the output from AI keyword extraction
type SuggestKeywordsOutput struct {
	Keywords []string `json:"keywords"`
}

// SuggestContentInput represents the input for AI content suggestions
type SuggestContentInput struct {
	JobRole         string `json:"jobRole"`
	Company         string `json:"company,omitempty"`
	YearsExperience int    `json:"yearsExperience,omitempty"`
	BulletCount     int    `json:"bulletCount,omitempty"`
}

// SuggestContentOutput represents the output from AI content suggestions
type SuggestContentOutput struct {
	Skills  []string `json:"skills"`
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
}
