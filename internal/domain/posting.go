package domain

// Posting is one accepted job opening. Immutable once it enters the store.
type Posting struct {
	ID           int64    `json:"id"`
	Date         string   `json:"date"` // YYYY-MM-DD
	Unit         string   `json:"unit"`
	Location     string   `json:"location"`
	Position     string   `json:"position"`
	Requirements string   `json:"requirements"`
	URL          string   `json:"url"`
	Type         Category `json:"type"`
}

// Month returns the YYYY-MM prefix of Date, or "" when the date is malformed.
func (p Posting) Month() string {
	if len(p.Date) < 7 {
		return ""
	}
	return p.Date[:7]
}
