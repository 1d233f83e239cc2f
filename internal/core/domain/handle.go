package domain

// HandlePolicy is the username syntax rule: lowercase alphanumeric, length
// within [MinLen, MaxLen]. The bounds are configuration, the character class
// is not.
type HandlePolicy struct {
	MinLen int
	MaxLen int
}

// DefaultHandlePolicy matches the site's published rule: 3-15 characters,
// letters and digits only, no spaces.
func DefaultHandlePolicy() HandlePolicy {
	return HandlePolicy{MinLen: 3, MaxLen: 15}
}

// Valid reports whether candidate satisfies the syntax rule. Pure; it says
// nothing about availability.
func (p HandlePolicy) Valid(candidate string) bool {
	if len(candidate) < p.MinLen || len(candidate) > p.MaxLen {
		return false
	}
	for _, r := range candidate {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// TooShort reports whether candidate is below the minimum length. Short
// candidates are rejected immediately and never probed for availability.
func (p HandlePolicy) TooShort(candidate string) bool {
	return len(candidate) < p.MinLen
}
