package analytics

// Delta is the signed adjustment one record event contributes to a monthly
// aggregate. Per-status counts and the records-processed count are additive
// and commutative, so concurrent deltas for the same month can be applied in
// any order through the store's atomic increment.
type Delta struct {
	Statuses map[Status]int
	Records  int
}

func CreateDelta(status Status) Delta {
	return Delta{
		Statuses: map[Status]int{status: 1},
		Records:  1,
	}
}

// UpdateDelta returns the adjustment for a status change. The second return
// is false when before == after: an unchanged-status write must produce no
// delta at all, not a zero-valued one that still touches the document.
func UpdateDelta(before, after Status) (Delta, bool) {
	if before == after {
		return Delta{}, false
	}
	return Delta{
		Statuses: map[Status]int{before: -1, after: 1},
	}, true
}

func DeleteDelta(status Status) Delta {
	return Delta{
		Statuses: map[Status]int{status: -1},
		Records:  -1,
	}
}

func (d Delta) IsZero() bool {
	if d.Records != 0 {
		return false
	}
	for _, n := range d.Statuses {
		if n != 0 {
			return false
		}
	}
	return true
}
