package feature

import (
	"strconv"
	"strings"
)

// Defaults is the fallback feature set used whenever the user's selection
// is empty or invalid.
var Defaults = []string{
	"bedrooms", "bathrooms", "sqft_living", "sqft_lot", "floors",
	"waterfront", "view", "condition", "grade", "yr_built",
}

// Reason records why a selection resolved the way it did.
type Reason string

const (
	ReasonChosen      Reason = "chosen"
	ReasonEmptyInput  Reason = "empty_input"
	ReasonParseError  Reason = "parse_error"
	ReasonNoneInRange Reason = "none_in_range"
)

// Selection is the validated outcome of one feature-selection attempt.
type Selection struct {
	Features     []string
	UsedDefaults bool
	Reason       Reason
}

// Select maps a raw comma-separated string of 1-based indices into available
// column names, in the order the indices were given.
//
// Empty input means the defaults. Out-of-range indices are dropped silently,
// but a single unparsable token invalidates the whole selection and falls
// back to the defaults, as does a selection where nothing was in range.
func Select(available []string, raw string) Selection {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selection{Features: defaults(), UsedDefaults: true, Reason: ReasonEmptyInput}
	}

	var selected []string
	for _, token := range strings.Split(raw, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return Selection{Features: defaults(), UsedDefaults: true, Reason: ReasonParseError}
		}
		if idx < 1 || idx > len(available) {
			continue
		}
		selected = append(selected, available[idx-1])
	}
	if len(selected) == 0 {
		return Selection{Features: defaults(), UsedDefaults: true, Reason: ReasonNoneInRange}
	}
	return Selection{Features: selected, Reason: ReasonChosen}
}

// IsDefault reports whether name belongs to the default feature set.
func IsDefault(name string) bool {
	for _, d := range Defaults {
		if d == name {
			return true
		}
	}
	return false
}

func defaults() []string {
	out := make([]string, len(Defaults))
	copy(out, Defaults)
	return out
}
