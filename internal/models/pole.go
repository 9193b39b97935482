package models

import "time"

// Device power and communication states as reported by the field gateway.
const (
	PowerOn  = "ON"
	PowerOff = "OFF"

	CommOnline  = "ONLINE"
	CommOffline = "OFFLINE"
)

// Pole is one monitored street pole. DisplayStatus is derived per request
// from CommunicationStatus and UpdateTime; it is never stored.
type Pole struct {
	PoleID              string     `json:"pole_id"`
	ClusterID           string     `json:"cluster_id"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Status              string     `json:"status"`
	CommunicationStatus string     `json:"communication_status"`
	State               string     `json:"state"`
	District            string     `json:"district"`
	CityOrVillage       string     `json:"city_or_village"`
	Mode                string     `json:"mode"`
	FirmwareVersion     string     `json:"firmware_version"`
	UpdateTime          *time.Time `json:"update_time"`
	DisplayStatus       string     `json:"display_status,omitempty"`
}
