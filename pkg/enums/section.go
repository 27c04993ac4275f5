package enums

import "fmt"

// Section identifies a physical area of the store floor. Reported
// positions must reference one of these.
type Section string

const (
	SectionProduce  Section = "produce"
	SectionDairy    Section = "dairy"
	SectionSpices   Section = "spices"
	SectionSnacks   Section = "snacks"
	SectionCare     Section = "care"
	SectionCheckout Section = "checkout"
)

var validSections = []Section{
	SectionProduce,
	SectionDairy,
	SectionSpices,
	SectionSnacks,
	SectionCare,
	SectionCheckout,
}

// Sections returns every known section in declaration order.
func Sections() []Section {
	out := make([]Section, len(validSections))
	copy(out, validSections)
	return out
}

// String implements fmt.Stringer.
func (s Section) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Section.
func (s Section) IsValid() bool {
	for _, candidate := range validSections {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSection converts raw input into a Section.
func ParseSection(value string) (Section, error) {
	for _, candidate := range validSections {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid section %q", value)
}
