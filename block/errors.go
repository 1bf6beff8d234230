package block

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingField is returned by Builder.Build when a required field
	// has not been set.
	ErrMissingField = errors.New("missing required block field")
	// ErrInvalidRange is returned by Builder.Build when one of the numeric
	// fields is negative.
	ErrInvalidRange = errors.New("negative block field")
)

// MissingFieldsError describes an incomplete Builder. Its message lists
// every required field with its value, unset ones being printed as <nil>.
type MissingFieldsError struct {
	// Fields contains names of the fields which were not set.
	Fields []string

	desc string
}

// Error implements error interface.
func (e *MissingFieldsError) Error() string {
	return e.desc
}

// Is makes MissingFieldsError match ErrMissingField.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingField
}

type fieldValue struct {
	name  string
	isSet bool
	value func() string
}

func newMissingFieldsError(fields []fieldValue) *MissingFieldsError {
	var (
		sb      strings.Builder
		missing []string
	)

	for i, f := range fields {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.name)
		sb.WriteByte('#')
		if f.isSet {
			sb.WriteString(f.value())
		} else {
			sb.WriteString("<nil>")
			missing = append(missing, f.name)
		}
	}

	return &MissingFieldsError{
		Fields: missing,
		desc:   sb.String(),
	}
}
