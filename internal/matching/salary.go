package matching

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryFigurePattern = regexp.MustCompile(`[0-9][0-9,.]*`)

// SalaryFigure extracts the numeric value embedded in a display string like
// "₹12,00,000 - 18,00,000 / yr". Only the first digit run counts; thousand
// separators are stripped. Absent or unparsable figures yield 0.
func SalaryFigure(display string) int64 {
	run := salaryFigurePattern.FindString(display)
	if run == "" {
		return 0
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, run)

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
