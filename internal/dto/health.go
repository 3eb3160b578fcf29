package dto

// HealthResponse describes a health/readiness probe result
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
