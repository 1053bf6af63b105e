package models

import "time"

// NotificationType is the category of a notification.
type NotificationType string

const (
	NotificationShipmentStatus  NotificationType = "shipment_status"
	NotificationShipmentDeleted NotificationType = "shipment_deleted"
	NotificationQuoteUpdate     NotificationType = "quote_update"
	NotificationGeneral         NotificationType = "general"
)

// Valid reports whether t is a known notification category.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationShipmentStatus, NotificationShipmentDeleted, NotificationQuoteUpdate, NotificationGeneral:
		return true
	}
	return false
}

// EntityKind names the kind of entity a notification may point at.
type EntityKind string

const (
	EntityShipment EntityKind = "Shipment"
	EntityQuote    EntityKind = "Quote"
)

// Valid reports whether k is Shipment or Quote.
func (k EntityKind) Valid() bool {
	return k == EntityShipment || k == EntityQuote
}

// EntityRef is a typed reference from a notification to a related entity.
type EntityRef struct {
	Kind EntityKind `json:"relatedEntityType"`
	ID   string     `json:"relatedEntityId"`
}

// Notification is a per-user message created when a domain event occurs.
type Notification struct {
	ID     string           `json:"id"`
	UserID string           `json:"userId"`
	Title  string           `json:"title"`
	Type   NotificationType `json:"type"`
	// Related is nil when the notification is not about a specific entity.
	Related   *EntityRef `json:"related,omitempty"`
	IsRead    bool       `json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NotificationEvent asks the notification store to create a notification.
// It is the payload exchanged through the event publisher and the broker.
type NotificationEvent struct {
	UserID     string           `json:"userId"`
	Title      string           `json:"title"`
	Type       NotificationType `json:"type"`
	Related    *EntityRef       `json:"related,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NotificationList is the response of GET /api/notifications.
type NotificationList struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []Notification `json:"data"`
}

// NotificationResult is the response of notification mutations.
type NotificationResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *Notification `json:"data,omitempty"`
}

// RelatedEntity is the resolved target of a notification reference.
// Exactly one of Shipment and Quote is set, according to Kind.
type RelatedEntity struct {
	Kind     EntityKind `json:"kind"`
	Shipment *Shipment  `json:"shipment,omitempty"`
	Quote    *Quote     `json:"quote,omitempty"`
}
