package service

import (
	"fmt"
	"math"
	"time"
)

// BilledHours converts elapsed time into whole billed hours: always rounded
// up, minimum 1 hour (a 5-minute stay still pays one hour).
func BilledHours(timeIn, timeOut time.Time) int {
	elapsed := timeOut.Sub(timeIn)
	hours := int(math.Ceil(elapsed.Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// DurationLabel renders the billed hours the way the tickets display them.
func DurationLabel(hours int) string {
	return fmt.Sprintf("%d hour(s)", hours)
}

// FinalPrice is billed hours times the ticket's base rate.
func FinalPrice(hours int, baseRate float64) float64 {
	return float64(hours) * baseRate
}
