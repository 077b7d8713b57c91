package analytics

import "fmt"

// Document paths under the analytics subtree. Nothing outside this subtree is
// ever written by this service.
func MonthlyAggregatePath(monthKey string) string {
	return fmt.Sprintf("analytics/monthly/%s", monthKey)
}

func ClassBreakdownPath(monthKey, classID string) string {
	return fmt.Sprintf("analytics/monthly/%s/classBreakdown/%s", monthKey, classID)
}
