package keywords

import "archive2svg/internal/band"

// Selection is the pair of keyword filter slots. A keyword can occupy only
// one slot: choosing it in one slot clears the other.
type Selection struct {
	one string
	two string
}

// SetOne selects kw in the first slot. "" clears the slot.
func (s *Selection) SetOne(kw string) {
	s.one = kw
	if kw != "" && s.two == kw {
		s.two = ""
	}
}

// SetTwo selects kw in the second slot. "" clears the slot.
func (s *Selection) SetTwo(kw string) {
	s.two = kw
	if kw != "" && s.one == kw {
		s.one = ""
	}
}

// Reset clears both slots.
func (s *Selection) Reset() {
	s.one, s.two = "", ""
}

// One returns the first slot.
func (s Selection) One() string { return s.one }

// Two returns the second slot.
func (s Selection) Two() string { return s.two }

// Both reports whether both slots are filled.
func (s Selection) Both() bool {
	return s.one != "" && s.two != ""
}

// Filters converts the selection into classifier filters.
func (s Selection) Filters() band.Filters {
	return band.Filters{KeywordOne: s.one, KeywordTwo: s.two}
}
