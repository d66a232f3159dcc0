package comment

import (
	"github.com/forumkit/forumkit/pkg/sanitizer"
	"github.com/forumkit/forumkit/pkg/validator"
)

// MaxReasonLength caps free-text explanations on reports and moderation
// actions.
const MaxReasonLength = 500

// ReportReasons is the closed set of accepted report reasons.
var ReportReasons = []string{
	"spam",
	"inappropriate",
	"harassment",
	"hate_speech",
	"violence",
	"misinformation",
	"copyright",
	"other",
}

// ModerationStatuses is the closed set of statuses a moderator can assign.
var ModerationStatuses = []string{"approved", "rejected", "flagged"}

// Report is a sanitized comment report payload.
type Report struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

// ReportResult reports the outcome of ValidateReport.
type ReportResult struct {
	Valid     bool
	Errors    []string
	Sanitized Report
}

// ValidateReport checks a comment report submission: reason is required and
// must be one of ReportReasons; description is optional but capped at
// MaxReasonLength characters.
func ValidateReport(data any) ReportResult {
	fields, ok := objectFields(data)
	if !ok {
		return ReportResult{Errors: []string{"Report data is required and must be an object"}}
	}

	reason, _ := fields["reason"].(string)
	description, _ := fields["description"].(string)

	sanitized := Report{
		Reason:      sanitizer.Trim(reason),
		Description: sanitizer.Trim(description),
	}

	rules := []validator.Rule{
		validator.RequiredStringMsg("reason", reason, "Report reason is required"),
	}
	if sanitized.Reason != "" {
		rules = append(rules, validator.ValidEnum("Report reason", sanitized.Reason, ReportReasons))
	}
	rules = append(rules, validator.MaxLenString("Report description", sanitized.Description, MaxReasonLength))

	result := ReportResult{Sanitized: sanitized}
	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}

// ModerationAction is a sanitized moderation decision payload.
type ModerationAction struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ModerationResult reports the outcome of ValidateModeration.
type ModerationResult struct {
	Valid     bool
	Errors    []string
	Sanitized ModerationAction
}

// ValidateModeration checks a moderation decision: status is required and
// must be one of ModerationStatuses; reason is optional but capped at
// MaxReasonLength characters.
func ValidateModeration(data any) ModerationResult {
	fields, ok := objectFields(data)
	if !ok {
		return ModerationResult{Errors: []string{"Moderation data is required and must be an object"}}
	}

	status, _ := fields["status"].(string)
	reason, _ := fields["reason"].(string)

	sanitized := ModerationAction{
		Status: sanitizer.Trim(status),
		Reason: sanitizer.Trim(reason),
	}

	rules := []validator.Rule{
		validator.RequiredStringMsg("status", status, "Moderation status is required"),
	}
	if sanitized.Status != "" {
		rules = append(rules, validator.ValidEnum("Moderation status", sanitized.Status, ModerationStatuses))
	}
	rules = append(rules, validator.MaxLenString("Moderation reason", sanitized.Reason, MaxReasonLength))

	result := ModerationResult{Sanitized: sanitized}
	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		result.Errors = verrs.Messages()
		return result
	}

	result.Valid = true
	return result
}

// objectFields normalizes the supported payload shapes into a field map. It
// is the object-prerequisite gate shared by the object validators: anything
// that is not a decoded JSON object (or a typed payload) fails as a whole
// before field checks run.
func objectFields(data any) (map[string]any, bool) {
	switch d := data.(type) {
	case map[string]any:
		return d, true
	case Report:
		return map[string]any{"reason": d.Reason, "description": d.Description}, true
	case ModerationAction:
		return map[string]any{"status": d.Status, "reason": d.Reason}, true
	default:
		return nil, false
	}
}
