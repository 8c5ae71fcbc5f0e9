package models

// ExpiryStatus is the derived, never persisted freshness of a pantry item.
type ExpiryStatus int

const (
	StatusNormal ExpiryStatus = iota
	StatusExpiringSoon
	StatusExpired
)

// ExpiringSoonDays is the inclusive upper bound of the expiring-soon window.
const ExpiringSoonDays = 7

func (s ExpiryStatus) String() string {
	switch s {
	case StatusExpired:
		return "expired"
	case StatusExpiringSoon:
		return "expiring-soon"
	default:
		return "normal"
	}
}

// ClassifyExpiry compares expiresOn with today in whole days:
// diff < 0 is expired, 0 <= diff <= 7 is expiring soon, anything later (or no
// date at all) is normal.
func ClassifyExpiry(expiresOn *Date, today Date) ExpiryStatus {
	if expiresOn == nil || expiresOn.IsZero() {
		return StatusNormal
	}
	diff := today.DaysUntil(*expiresOn)
	switch {
	case diff < 0:
		return StatusExpired
	case diff <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusNormal
	}
}

// Status classifies the item relative to today.
func (p PantryItem) Status(today Date) ExpiryStatus {
	return ClassifyExpiry(p.ExpiresOn, today)
}

// CountExpiringSoon counts items in the expiring-soon window. Expired items
// are not included.
func CountExpiringSoon(items []PantryItem, today Date) int {
	n := 0
	for _, it := range items {
		if it.Status(today) == StatusExpiringSoon {
			n++
		}
	}
	return n
}
