package models

import (
	"math"
	"time"
)

// ShipmentStatus is the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending    ShipmentStatus = "Pending"
	StatusProcessing ShipmentStatus = "Processing"
	StatusShipped    ShipmentStatus = "Shipped"
	StatusInTransit  ShipmentStatus = "In Transit"
	StatusDelivered  ShipmentStatus = "Delivered"
	StatusCancelled  ShipmentStatus = "Cancelled"
)

// ShipmentStatuses lists every accepted status in lifecycle order.
var ShipmentStatuses = []ShipmentStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

// forward maps each non-terminal status to the next step of the regular
// delivery chain.
var forward = map[ShipmentStatus]ShipmentStatus{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusInTransit,
	StatusInTransit:  StatusDelivered,
}

// Valid reports whether s is one of [ShipmentStatuses].
func (s ShipmentStatus) Valid() bool {
	for _, status := range ShipmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s ShipmentStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether a shipment in status s may move to next.
//
// Allowed moves are the single forward step of the delivery chain,
// cancellation of any non-terminal shipment and re-applying the current
// status.
func (s ShipmentStatus) CanTransition(next ShipmentStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return forward[s] == next
}

// ShipmentType tells whether goods leave or enter the country.
type ShipmentType string

const (
	TypeExport ShipmentType = "Export"
	TypeImport ShipmentType = "Import"
)

// Valid reports whether t is Export or Import.
func (t ShipmentType) Valid() bool {
	return t == TypeExport || t == TypeImport
}

// Shipment is a tracked consignment owned by exactly one user.
type Shipment struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user"`
	TrackID      string         `json:"trackId"`
	ProductName  string         `json:"productName"`
	Source       string         `json:"source"`
	Destination  string         `json:"destination"`
	ExpectedDate time.Time      `json:"expectedDate"`
	Status       ShipmentStatus `json:"status"`
	Type         ShipmentType   `json:"type"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Summary returns the list projection of the shipment.
func (s Shipment) Summary() ShipmentSummary {
	return ShipmentSummary{
		ID:           s.ID,
		TrackID:      s.TrackID,
		ProductName:  s.ProductName,
		Source:       s.Source,
		Destination:  s.Destination,
		ExpectedDate: s.ExpectedDate,
		Status:       s.Status,
	}
}

// ShipmentSummary is the reduced shipment view used by list endpoints.
type ShipmentSummary struct {
	ID           string         `json:"id"`
	TrackID      string         `json:"trackId"`
	ProductName  string         `json:"productName"`
	Source       string         `json:"source"`
	Destination  string         `json:"destination"`
	ExpectedDate time.Time      `json:"expectedDate"`
	Status       ShipmentStatus `json:"status"`
}

// CreateShipmentRequest is the payload of POST /api/users/shipments.
// ExpectedDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type CreateShipmentRequest struct {
	TrackID      string `json:"trackId"`
	ProductName  string `json:"productName"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	ExpectedDate string `json:"expectedDate"`
	Status       string `json:"status"`
	Type         string `json:"type"`
}

// UpdateStatusRequest is the payload of PUT /api/users/shipments/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ShipmentFilter narrows a shipment listing.
type ShipmentFilter struct {
	UserID string
	// Search matches trackId or productName, case-insensitively.
	Search string
	Status ShipmentStatus
	Page   int
	Limit  int
}

// Offset returns the number of rows to skip for the requested page. Pages
// too far out to address saturate at math.MaxInt.
func (f ShipmentFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// ShipmentPage is one page of a shipment listing.
type ShipmentPage struct {
	Shipments   []ShipmentSummary `json:"shipments"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	TotalItems  int64             `json:"totalItems"`
}

// ShipmentCounts holds per-owner shipment totals.
type ShipmentCounts struct {
	Total   int64
	Exports int64
	Imports int64
}

// ShipmentResponse wraps a single shipment with a human readable message.
type ShipmentResponse struct {
	Message  string   `json:"message"`
	Shipment Shipment `json:"shipment"`
}
