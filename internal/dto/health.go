package dto

// HealthResponse reports the reachability of the service's dependencies.
type HealthResponse struct {
	Status        string `json:"status"`
	ContractsAPI  string `json:"contractsAPI"`
	ExportHistory string `json:"exportHistory,omitempty"`
}
