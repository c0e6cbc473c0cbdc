package models

const NotAvailable = "N/A"

// ATSReport is the resume scan produced at upload time.
type ATSReport struct {
	Score            string   `json:"score"`
	MissingKeywords  []string `json:"missing_keywords"`
	FormattingIssues []string `json:"formatting_issues,omitempty"`
	Summary          string   `json:"summary"`
}

// DefaultATSReport is returned when the resume could not be analysed.
func DefaultATSReport() ATSReport {
	return ATSReport{
		Score:           NotAvailable,
		MissingKeywords: []string{},
		Summary:         "Analysis failed or pending.",
	}
}

// FinalReport is the end-of-interview performance report.
type FinalReport struct {
	Communication string   `json:"communication"`
	Technical     string   `json:"technical"`
	Confidence    string   `json:"confidence"`
	Feedback      string   `json:"feedback"`
	Improvements  []string `json:"improvements"`
	ATSScore      string   `json:"ats_score"`
	MissingSkills []string `json:"missing_skills"`
}

// Turn is one question/reply pair of the mock interview.
type Turn struct {
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// PerformanceReport holds only the fields the model produced, used by the
// plain report mode which does not merge the ATS scan.
type PerformanceReport struct {
	Communication string   `json:"communication,omitempty"`
	Technical     string   `json:"technical,omitempty"`
	Confidence    string   `json:"confidence,omitempty"`
	Feedback      string   `json:"feedback,omitempty"`
	Improvements  []string `json:"improvements,omitempty"`
}
