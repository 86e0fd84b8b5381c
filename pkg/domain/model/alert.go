package model

import (
	"time"

	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

// Alert is one code scanning alert of the most recent completed scan of a
// repository. Superseded alerts keep their row with DeletedAt set.
type Alert struct {
	ID        types.AlertID     `json:"id"`
	Repo      string            `json:"repo"`
	Number    types.AlertNumber `json:"number"`
	Severity  types.Severity    `json:"severity"`
	RuleID    string            `json:"rule_id"`
	Message   string            `json:"message"`
	File      string            `json:"file"`
	Line      int               `json:"line"`
	State     string            `json:"state"`
	URL       string            `json:"url,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	DeletedAt *time.Time        `json:"deleted_at,omitempty"`
}

// SeverityFromRule picks the alert tier. security_severity_level is the
// canonical source; the plain rule severity is mapped only when it is absent.
func SeverityFromRule(securityLevel, severity string) types.Severity {
	switch s := types.Severity(securityLevel); s {
	case types.SeverityCritical, types.SeverityHigh, types.SeverityMedium, types.SeverityLow:
		return s
	}

	switch severity {
	case "error":
		return types.SeverityHigh
	case "warning":
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}
