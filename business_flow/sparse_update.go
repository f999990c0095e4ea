package businessflow

import (
	"strings"
	"time"

	"github.com/amirphl/copydesk/utils"
)

// presence is implemented by utils.Optional
type presence interface {
	IsSet() bool
	ColumnValue() any
}

// sparseUpdate builds the column set of a partial update from the supplied
// fields only and stamps updated_at with now. Absent fields are left out,
// so the stored values stay untouched.
func sparseUpdate(fields map[string]presence, now time.Time) (map[string]any, error) {
	set := make(map[string]any, len(fields)+1)
	for column, field := range fields {
		if field.IsSet() {
			set[column] = field.ColumnValue()
		}
	}

	if len(set) == 0 {
		return nil, NewBusinessError(CodeValidation, MsgNoUpdateFields, ErrNoUpdateFields)
	}

	set["updated_at"] = now
	return set, nil
}

// requireNonBlank rejects a supplied field that would clear a required column
func requireNonBlank(field utils.Optional[string], err error) error {
	if !field.IsSet() {
		return nil
	}
	value, ok := field.Get()
	if !ok || strings.TrimSpace(value) == "" {
		return validationError(err)
	}
	return nil
}
