package storage

const (
	PartnerActive   = "active"
	PartnerInactive = "inactive"
)

var PartnerStatuses = []string{PartnerActive, PartnerInactive}

type PartnerMetrics struct {
	Rating          float64 `json:"rating"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
}

type Partner struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Status      string         `json:"status"`
	CurrentLoad int            `json:"currentLoad"`
	Areas       []string       `json:"areas,omitempty"`
	Metrics     PartnerMetrics `json:"metrics"`
}

// PartnerUpdate carries only the fields the edit form exposes.
type PartnerUpdate struct {
	Name   string `json:"name" form:"name"`
	Email  string `json:"email" form:"email"`
	Phone  string `json:"phone" form:"phone"`
	Status string `json:"status" form:"status"`
}

func ValidPartnerStatus(s string) bool {
	return s == PartnerActive || s == PartnerInactive
}
