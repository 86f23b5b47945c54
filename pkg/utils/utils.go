package utils

import (
	"strconv"
	"time"
	"unicode"
)

// FormatBMI computes body mass index from weight in kilograms and height in
// centimeters, formatted to one decimal place as the profile page shows it.
func FormatBMI(weightKG, heightCM float64) string {
	meters := heightCM / 100
	return strconv.FormatFloat(weightKG/(meters*meters), 'f', 1, 64)
}

// AvatarInitial returns the uppercased first letter of a username, used as
// the member's avatar placeholder.
func AvatarInitial(username string) string {
	for _, r := range username {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// NewMessageID allocates a time-based chat message id in Unix milliseconds.
func NewMessageID() int64 {
	return time.Now().UnixMilli()
}
