package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"
)

const (
	locationCodeMinLen = 2
	locationCodeMaxLen = 32
)

var (
	// ErrLocationCodeIsNotConstructed is returned when a LocationCode zero value is used.
	ErrLocationCodeIsNotConstructed = errs.NewValueIsRequiredError(
		"location code must be created via NewLocationCode")

	locationCodePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// LocationCode identifies the service area a device operates in and that
// pricing rules are scoped to (for example a district or pin-code cluster).
// Codes are case-insensitive on input and stored upper-cased.
type LocationCode struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewLocationCode trims and upper-cases raw and checks it is 2..32 characters of [A-Z0-9-].
func NewLocationCode(raw string) (LocationCode, error) {
	lc := LocationCode{guard: guard.NewConstructorGuard()}
	if err := lc.setCode(raw); err != nil {
		return LocationCode{}, err
	}
	return lc, nil
}

// Validate checks the code was created by NewLocationCode.
func (l LocationCode) Validate() error {
	return l.guard.Validate(ErrLocationCodeIsNotConstructed)
}

func (l LocationCode) String() string {
	return l.code
}

// IsEqual reports whether both codes are the same area.
func (l LocationCode) IsEqual(other LocationCode) bool {
	return l.code == other.code
}

func (l *LocationCode) setCode(raw string) error {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return errs.NewValueIsRequiredError("location code")
	}
	if len(code) < locationCodeMinLen || len(code) > locationCodeMaxLen {
		return errs.NewValueIsOutOfRangeError("location code length", len(code), locationCodeMinLen, locationCodeMaxLen)
	}
	if !locationCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("location code",
			fmt.Errorf("%q contains characters outside [A-Z0-9-]", code))
	}

	l.code = code
	return nil
}
