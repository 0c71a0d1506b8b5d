package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one append-only audit record of an inventory-affecting
// event. Entries are written once and never updated.
type LedgerEntry struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ItemID        uuid.UUID `json:"item_id" db:"item_id"`
	WorkspaceID   string    `json:"workspace_id" db:"workspace_id"`
	PreviousUnits int       `json:"previous_units" db:"previous_units"`
	NewUnits      int       `json:"new_units" db:"new_units"`
	ActorName     string    `json:"actor_name" db:"actor_name"`
	Source        string    `json:"source" db:"source"`
	Reason        string    `json:"reason" db:"reason"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
