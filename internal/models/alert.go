package models

import "time"

// AlertActive marks alerts that still need attention; counted by /api/stats.
const AlertActive = "ACTIVE"

// Alert is a raised condition on a pole, optionally annotated by a technician.
type Alert struct {
	PoleID       string    `json:"pole_id"`
	Message      string    `json:"message"`
	Severity     string    `json:"severity"`
	AlertStatus  string    `json:"alert_status"`
	AlertType    string    `json:"alert_type"`
	TechnicianID *int64    `json:"technician_id"`
	ActionTaken  *string   `json:"action_taken"`
	Remarks      *string   `json:"remarks"`
	Timestamp    time.Time `json:"timestamp"`
}
