package enums

import "testing"

func TestParseSection(t *testing.T) {
	for _, section := range Sections() {
		parsed, err := ParseSection(section.String())
		if err != nil {
			t.Fatalf("ParseSection(%q) returned error: %v", section, err)
		}
		if parsed != section {
			t.Fatalf("ParseSection(%q) = %q", section, parsed)
		}
		if !parsed.IsValid() {
			t.Fatalf("expected %q to be valid", parsed)
		}
	}

	if _, err := ParseSection("freezer"); err == nil {
		t.Fatal("expected unknown section to fail parsing")
	}
	if Section("freezer").IsValid() {
		t.Fatal("unknown section must not be valid")
	}
	if Section("").IsValid() {
		t.Fatal("empty section must not be valid")
	}
}

func TestSectionsReturnsCopy(t *testing.T) {
	sections := Sections()
	sections[0] = Section("mutated")
	if Sections()[0] != SectionProduce {
		t.Fatal("Sections() must not expose internal state")
	}
}

func TestParseDiscountType(t *testing.T) {
	if _, err := ParseDiscountType("percentage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseDiscountType("loyalty"); err == nil {
		t.Fatal("expected unknown discount type to fail parsing")
	}
}
