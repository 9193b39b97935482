package models

// FleetStats aggregates headline counts for the dashboard.
type FleetStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Alerts   int `json:"alerts"`
}
