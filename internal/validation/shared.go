package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
)

type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks that id is a canonical hyphenated UUID.
func ValidateUUID(id string) error {
	if len(id) != 36 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidUUID, err)
	}
	return nil
}
