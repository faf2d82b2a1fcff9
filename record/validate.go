package record

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Result is the verdict of validating a single raw field value. When OK,
// Value holds the normalized value; otherwise Message explains the rejection.
// Warning carries a non-fatal range diagnostic: the value is still accepted,
// callers surface the warning and keep it.
type Result struct {
	OK      bool
	Value   string
	Message string
	Warning string
}

// Axis selects the coordinate range check.
type Axis string

const (
	Latitude  Axis = "latitude"
	Longitude Axis = "longitude"
)

// Identifier format patterns.
var (
	doiPattern   = regexp.MustCompile(`^10\.\d{4,}/[^\s]+$`)
	orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
)

// ValidateCoordinate checks a raw coordinate string for the given axis.
// Empty input is valid (the field is optional). Non-numeric input is
// rejected. Numeric input outside the axis range is accepted with a warning
// rather than rejected, so real field data entered in a non-standard
// convention is never discarded.
func ValidateCoordinate(raw string, axis Axis) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{Message: fmt.Sprintf("%q is not a valid number for %s", raw, axis)}
	}

	res := Result{OK: true, Value: raw}
	switch axis {
	case Latitude:
		if v < -90 || v > 90 {
			res.Warning = fmt.Sprintf("latitude %g is outside expected range (-90 to 90), please enter as decimal degrees", v)
		}
	case Longitude:
		if v < -180 || v > 180 {
			res.Warning = fmt.Sprintf("longitude %g is outside expected range (-180 to 180), please enter as decimal degrees", v)
		}
	}
	return res
}

// ValidateDOI checks a raw DOI string. Empty input is valid. A leading
// resolver URL or "doi:" prefix is stripped before matching; on success the
// normalized value is the bare DOI.
func ValidateDOI(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	cleaned := raw
	cleaned = strings.TrimPrefix(cleaned, "https://doi.org/")
	cleaned = strings.TrimPrefix(cleaned, "http://doi.org/")
	cleaned = strings.TrimPrefix(cleaned, "doi:")

	if !doiPattern.MatchString(cleaned) {
		return Result{Message: fmt.Sprintf("%q does not appear to be a valid DOI (expected format: 10.xxxx/yyyy)", raw)}
	}
	return Result{OK: true, Value: cleaned}
}

// ValidateORCID checks a raw ORCID iD. Empty input is valid. A leading
// orcid.org URL prefix is stripped before matching. The expected form is
// four hyphen-separated groups of four; the final character may be X.
func ValidateORCID(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	cleaned := raw
	cleaned = strings.TrimPrefix(cleaned, "https://orcid.org/")
	cleaned = strings.TrimPrefix(cleaned, "http://orcid.org/")
	cleaned = strings.TrimPrefix(cleaned, "orcid.org/")

	if !orcidPattern.MatchString(cleaned) {
		return Result{Message: fmt.Sprintf("%q is not a valid ORCID format (expected 0000-0000-0000-0000, last digit may be X)", raw)}
	}
	return Result{OK: true, Value: cleaned}
}

// ValidateDate checks a raw date string and normalizes it to ISO YYYY-MM-DD.
// Empty input is valid. Anything dateparse can understand is accepted, so
// human-entered forms like "Jan 2, 2023" normalize cleanly.
func ValidateDate(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	t, err := dateparse.ParseStrict(raw)
	if err != nil {
		return Result{Message: fmt.Sprintf("%q is not a recognizable date (expected YYYY-MM-DD)", raw)}
	}
	return Result{OK: true, Value: t.Format("2006-01-02")}
}

// ValidateTime checks a raw time-of-day string. Empty input is valid.
func ValidateTime(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	if _, err := time.Parse("15:04:05", raw); err != nil {
		return Result{Message: fmt.Sprintf("%q is not a valid time (expected hh:mm:ss)", raw)}
	}
	return Result{OK: true, Value: raw}
}

// ValidateYear checks a raw publication year. Empty input is valid.
// Non-numeric input is rejected; an implausible year warns but is accepted,
// mirroring the soft coordinate range check.
func ValidateYear(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{OK: true}
	}

	y, err := strconv.Atoi(raw)
	if err != nil {
		return Result{Message: fmt.Sprintf("%q is not a valid year (expected YYYY)", raw)}
	}

	res := Result{OK: true, Value: raw}
	currentYear := time.Now().Year()
	if y < 1000 || y > currentYear+10 {
		res.Warning = fmt.Sprintf("year %d is outside the expected range (1000-%d)", y, currentYear+10)
	}
	return res
}
