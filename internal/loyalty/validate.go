package loyalty

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"puntos-store/internal/model"
)

var (
	// Identity doubles as the login token, so the format is constrained
	// to keep lookups unambiguous.
	identityPattern = regexp.MustCompile(`^[0-9]{6,12}$`)

	// Letters (including accented ones) and spaces only.
	namePattern = regexp.MustCompile(`^[\p{L} ]+$`)
)

// ValidateIdentity checks that raw is a 6 to 12 digit identity number.
func ValidateIdentity(raw string) error {
	if !identityPattern.MatchString(raw) {
		return model.ErrInvalidIdentity
	}
	return nil
}

// ValidateDisplayName checks that raw, after trimming, is 3 to 50
// characters of letters and spaces.
func ValidateDisplayName(raw string) error {
	name := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(name)
	if length < 3 || length > 50 {
		return model.ErrInvalidDisplayName
	}
	if !namePattern.MatchString(name) {
		return model.ErrInvalidDisplayName
	}
	return nil
}

// ParseRedemption parses the requested points-to-use value and checks it
// against the available balance. The balance check runs before any
// pricing so that a customer asking for more points than they hold is
// told so directly.
func ParseRedemption(raw string, available int) (int, error) {
	points, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, model.ErrPointsNotANumber
	}
	if points < 0 {
		return 0, model.ErrNegativePoints
	}
	if points > available {
		return 0, model.ErrInsufficientBalance
	}
	return points, nil
}
