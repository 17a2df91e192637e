package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID accepts the canonical 36-character UUID form. uuid.UUID values are
// checked through their String form.
var IsUUID = matching(validUUID, func(field string) string {
	return fmt.Sprintf("%s must be a valid UUID", field)
})

func validUUID(value string) bool {
	// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
