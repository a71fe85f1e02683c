package searchform

import "time"

// DateLayout is the value format of a native date input.
const DateLayout = "2006-01-02"

// Today returns the calendar date of now in loc as YYYY-MM-DD.
// A nil loc means UTC.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}

// DateConstraints holds the min attributes of the two date inputs.
type DateConstraints struct {
	CheckinMin  string
	CheckoutMin string
}

// LoadConstraints returns the constraints applied when the form first loads:
// neither date may precede today.
func LoadConstraints(today string) DateConstraints {
	return DateConstraints{CheckinMin: today, CheckoutMin: today}
}

// ChangeCheckin applies a new check-in value. The check-out minimum follows
// check-in, and a check-out that is no longer strictly after check-in is
// cleared. The returned string is the check-out value to keep.
//
// Dates compare as strings; YYYY-MM-DD sorts chronologically.
func (c DateConstraints) ChangeCheckin(checkin, checkout string) (DateConstraints, string) {
	c.CheckoutMin = checkin
	if checkout != "" && checkout <= checkin {
		checkout = ""
	}
	return c, checkout
}
