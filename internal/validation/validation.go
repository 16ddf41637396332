package validation

import "strings"

// Missing accumulates the names of absent required fields so a create request
// can report all of them in one response.
type Missing []string

func (m *Missing) Add(field string) { *m = append(*m, field) }

// Require records field when value is blank.
func (m *Missing) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		m.Add(field)
	}
}

// RequireID records field when a foreign key is unset.
func (m *Missing) RequireID(field string, id uint) {
	if id == 0 {
		m.Add(field)
	}
}

// RequirePositive records field when a numeric value is missing or not positive.
func (m *Missing) RequirePositive(field string, v float64) {
	if v <= 0 {
		m.Add(field)
	}
}

// RequirePresent records field when an optional pointer was not supplied at
// all. Used for required booleans, where false is a legitimate value.
func (m *Missing) RequirePresent(field string, present bool) {
	if !present {
		m.Add(field)
	}
}

func (m Missing) Empty() bool { return len(m) == 0 }

// Message renders "A, b and c are required!" in the API's message style. The
// first field name is capitalized, the rest keep their payload spelling.
func (m Missing) Message() string {
	names := make([]string, len(m))
	copy(names, m)
	if len(names) > 0 {
		names[0] = strings.ToUpper(names[0][:1]) + names[0][1:]
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " is required!"
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1] + " are required!"
	}
}
