package storage

import "time"

const (
	AssignmentCompleted = "completed"
	AssignmentFailed    = "failed"
)

var AssignmentStatuses = []string{AssignmentCompleted, AssignmentFailed}

type AssignmentOrder struct {
	ID          string   `json:"_id"`
	OrderNumber string   `json:"orderNumber"`
	Customer    Customer `json:"customer"`
	Area        string   `json:"area,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type AssignmentPartner struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Assignment links one order to one partner. Either reference may be null
// once the backend has deleted the underlying record.
type Assignment struct {
	ID        string             `json:"_id"`
	Order     *AssignmentOrder   `json:"orderId"`
	Partner   *AssignmentPartner `json:"partnerId"`
	Timestamp time.Time          `json:"timestamp"`
	Status    string             `json:"status"`
	Reason    *string            `json:"reason"`
}

func (a Assignment) OrderNumber() string {
	if a.Order == nil {
		return ""
	}
	return a.Order.OrderNumber
}

func (a Assignment) PartnerName() string {
	if a.Partner == nil {
		return ""
	}
	return a.Partner.Name
}

func (a Assignment) FailureReason() string {
	if a.Reason == nil {
		return ""
	}
	return *a.Reason
}
