package models

import "time"

type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Budget      float64    `json:"budget"`
	Image       string     `json:"image"`
	Date        *time.Time `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	Closed      bool       `json:"closed"`
}
