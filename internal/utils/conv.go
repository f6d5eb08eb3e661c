package utils

import (
	"strconv"
	"time"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToDuration accepts Go durations ("90s") or plain seconds ("3000").
func StringToDuration(s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return time.Duration(StringToInt(s)) * time.Second
}
