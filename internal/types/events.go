package types

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// RecordChange is the push envelope for an attendanceRecords lifecycle event.
// Before is nil on create, After is nil on delete; both are set on update.
// Delivery is at-least-once, so the same change may arrive more than once.
type RecordChange struct {
	Kind     ChangeKind        `json:"kind"`
	RecordID string            `json:"recordId"`
	Before   *AttendanceRecord `json:"before,omitempty"`
	After    *AttendanceRecord `json:"after,omitempty"`
}

// SessionChange is the push envelope for an attendanceSessions write.
type SessionChange struct {
	Kind      ChangeKind         `json:"kind"`
	SessionID string             `json:"sessionId"`
	Before    *AttendanceSession `json:"before,omitempty"`
	After     *AttendanceSession `json:"after,omitempty"`
}
