package analytics

import "fmt"

// Status is the closed attendance-status enum. Counter fields on the monthly
// aggregate are keyed by it, so every status coming off the wire is validated
// here before any increment is issued; an unknown value must never mint a new
// counter field.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown attendance status %q", e.Value)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return Status(s), nil
	default:
		return "", &UnknownStatusError{Value: s}
	}
}
