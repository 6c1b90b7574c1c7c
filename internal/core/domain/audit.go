package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionConfirmOrder  AuditAction = "CONFIRM_ORDER"
	AuditActionMarkRto       AuditAction = "MARK_RTO"
	AuditActionComputeMargin AuditAction = "COMPUTE_MARGIN"
)

// AuditLog records a single audited posting action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	StoreID      string      `json:"store_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
