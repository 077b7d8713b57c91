package types

import "time"

// MonthlyAggregate is the analytics/monthly/{YYYY-MM} document. It is created
// lazily by the first merge-write that touches its month and is never deleted.
type MonthlyAggregate struct {
	Month                 string           `firestore:"month" json:"month"`
	TotalClasses          int              `firestore:"totalClasses" json:"totalClasses"`
	AttendanceTotals      AttendanceTotals `firestore:"attendanceTotals" json:"attendanceTotals"`
	PopulationStats       PopulationStats  `firestore:"populationStats" json:"populationStats"`
	TotalRecordsProcessed int              `firestore:"totalRecordsProcessed" json:"totalRecordsProcessed"`
	LastUpdated           time.Time        `firestore:"lastUpdated" json:"lastUpdated"`
}

type AttendanceTotals struct {
	Present int `firestore:"present" json:"present"`
	Absent  int `firestore:"absent" json:"absent"`
	Late    int `firestore:"late" json:"late"`
	Excused int `firestore:"excused" json:"excused"`
}

type PopulationStats struct {
	YsaTotal        int `firestore:"ysaTotal" json:"ysaTotal"`
	YsaNonMembers   int `firestore:"ysaNonMembers" json:"ysaNonMembers"`
	ByuPathwayCount int `firestore:"byuPathwayCount" json:"byuPathwayCount"`
}

// ClassBreakdown lives at analytics/monthly/{YYYY-MM}/classBreakdown/{classId}.
// This service only ever reads it; synthesis happens out of band.
type ClassBreakdown struct {
	ClassName        string              `firestore:"className" json:"className"`
	InstructorName   string              `firestore:"instructorName" json:"instructorName"`
	SessionsHeld     int                 `firestore:"sessionsHeld" json:"sessionsHeld"`
	AttendanceTotals AttendanceTotals    `firestore:"attendanceTotals" json:"attendanceTotals"`
	PopulationStats  BreakdownPopulation `firestore:"populationStats" json:"populationStats"`
	SessionDetails   []SessionDetail     `firestore:"sessionDetails" json:"sessionDetails"`
}

type BreakdownPopulation struct {
	EnrolledMembers    int `firestore:"enrolledMembers" json:"enrolledMembers"`
	EnrolledNonMembers int `firestore:"enrolledNonMembers" json:"enrolledNonMembers"`
	ByuPathwayEnrolled int `firestore:"byuPathwayEnrolled" json:"byuPathwayEnrolled"`
}

type SessionDetail struct {
	SessionID    string    `firestore:"sessionId" json:"sessionId"`
	SessionDate  time.Time `firestore:"sessionDate" json:"sessionDate"`
	PresentCount int       `firestore:"presentCount" json:"presentCount"`
	AbsentCount  int       `firestore:"absentCount" json:"absentCount"`
	LateCount    int       `firestore:"lateCount" json:"lateCount"`
	ExcusedCount int       `firestore:"excusedCount" json:"excusedCount"`
}
