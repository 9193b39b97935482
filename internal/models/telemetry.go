package models

import "time"

// TelemetrySample is a single reported reading from a pole.
type TelemetrySample struct {
	PoleID         string    `json:"pole_id"`
	Status         string    `json:"status"`
	SignalStrength float64   `json:"signal_strength"`
	Timestamp      time.Time `json:"timestamp"`
}
