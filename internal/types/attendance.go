package types

import "time"

// AttendanceRecord and AttendanceSession are owned by the frontend's CRUD
// layer; this service only reads them from change events and lookups.
type AttendanceRecord struct {
	SessionID     string    `firestore:"sessionId" json:"sessionId"`
	ParticipantID string    `firestore:"participantId" json:"participantId"`
	Status        string    `firestore:"status" json:"status"`
	MarkedBy      string    `firestore:"markedBy" json:"markedBy"`
	MarkedAt      time.Time `firestore:"markedAt" json:"markedAt"`
}

// SessionDate is either a native timestamp or an ISO-8601 string depending on
// which client wrote the session; analytics.ParseSessionDate normalizes it.
type AttendanceSession struct {
	ID          string `firestore:"-" json:"id"`
	ClassID     string `firestore:"classId" json:"classId"`
	SessionDate any    `firestore:"sessionDate" json:"sessionDate"`
	Notes       string `firestore:"notes" json:"notes"`
	CreatedBy   string `firestore:"createdBy" json:"createdBy"`
}

type Class struct {
	ID             string `firestore:"-" json:"id"`
	Name           string `firestore:"name" json:"name"`
	InstructorName string `firestore:"instructorName" json:"instructorName"`
}

// Member is the users-collection shape the population job tallies.
type Member struct {
	ID           string `firestore:"-" json:"id"`
	DisplayName  string `firestore:"displayName" json:"displayName"`
	IsYsa        bool   `firestore:"isYsa" json:"isYsa"`
	IsMember     bool   `firestore:"isMember" json:"isMember"`
	IsByuPathway bool   `firestore:"isByuPathway" json:"isByuPathway"`
}
