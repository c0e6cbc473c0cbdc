package services

import (
	"mockmate/interview-api/internal/models"
)

const NoHistoryFeedback = "No interview history found."

// ATSReportFromObject builds an ATS report from an extracted object. The
// object replaces the default report wholesale, so missing fields stay empty.
func ATSReportFromObject(obj map[string]any) models.ATSReport {
	var r models.ATSReport
	if v, ok := stringField(obj, "score"); ok {
		r.Score = v
	}
	if v, ok := stringsField(obj, "missing_keywords"); ok {
		r.MissingKeywords = v
	}
	if v, ok := stringsField(obj, "formatting_issues"); ok {
		r.FormattingIssues = v
	}
	if v, ok := stringField(obj, "summary"); ok {
		r.Summary = v
	}
	if r.MissingKeywords == nil {
		r.MissingKeywords = []string{}
	}
	return r
}

// DefaultFinalReport is the report for an empty transcript: every rating is
// N/A and the ATS fields come from the stored scan when there is one.
func DefaultFinalReport(ats *models.ATSReport) models.FinalReport {
	report := models.FinalReport{
		Communication: models.NotAvailable,
		Technical:     models.NotAvailable,
		Confidence:    models.NotAvailable,
		Feedback:      NoHistoryFeedback,
		Improvements:  []string{},
		ATSScore:      models.NotAvailable,
		MissingSkills: []string{},
	}

	if ats != nil {
		if ats.Score != "" {
			report.ATSScore = ats.Score
		}
		if ats.MissingKeywords != nil {
			report.MissingSkills = append([]string{}, ats.MissingKeywords...)
		}
	}

	return report
}

// MergeFinalReport overlays the keys present in performance onto the default
// report. It is a shallow, field-by-field override; a nil performance object
// leaves the defaults untouched.
func MergeFinalReport(ats *models.ATSReport, performance map[string]any) models.FinalReport {
	report := DefaultFinalReport(ats)
	if performance == nil {
		return report
	}

	if v, ok := stringField(performance, "communication"); ok {
		report.Communication = v
	}
	if v, ok := stringField(performance, "technical"); ok {
		report.Technical = v
	}
	if v, ok := stringField(performance, "confidence"); ok {
		report.Confidence = v
	}
	if v, ok := stringField(performance, "feedback"); ok {
		report.Feedback = v
	}
	if v, ok := stringsField(performance, "improvements"); ok {
		report.Improvements = v
	}
	if v, ok := stringField(performance, "ats_score"); ok {
		report.ATSScore = v
	}
	if v, ok := stringsField(performance, "missing_skills"); ok {
		report.MissingSkills = v
	}

	return report
}

// PerformanceReportFromObject copies only the fields the model returned.
func PerformanceReportFromObject(obj map[string]any) models.PerformanceReport {
	var r models.PerformanceReport
	if v, ok := stringField(obj, "communication"); ok {
		r.Communication = v
	}
	if v, ok := stringField(obj, "technical"); ok {
		r.Technical = v
	}
	if v, ok := stringField(obj, "confidence"); ok {
		r.Confidence = v
	}
	if v, ok := stringField(obj, "feedback"); ok {
		r.Feedback = v
	}
	if v, ok := stringsField(obj, "improvements"); ok {
		r.Improvements = v
	}
	return r
}
