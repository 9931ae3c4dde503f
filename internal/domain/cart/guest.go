package cart

import (
	"github.com/google/uuid"
)

// GuestEntry is one line of a locally held guest cart submitted for
// migration after login. Entries referencing unknown or inactive
// products are skipped during migration rather than failing it.
type GuestEntry struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Color     string
}
