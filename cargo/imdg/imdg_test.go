package imdg

import (
	"sort"
	"strings"
	"testing"
)

func TestAreCompatible_AbsentClassIsAlwaysCompatible(t *testing.T) {
	for _, other := range append(Classes(), "Classe inconnue", "") {
		if !AreCompatible("", other) {
			t.Errorf("AreCompatible(\"\", %q) = false, want true", other)
		}
		if !AreCompatible(other, "") {
			t.Errorf("AreCompatible(%q, \"\") = false, want true", other)
		}
	}
}

func TestAreCompatible_UnknownClassFailsOpen(t *testing.T) {
	if !AreCompatible("Classe 42", "Classe 1") {
		t.Error("unknown class should be treated as compatible")
	}
	if got := IncompatibleClassesFor("Classe 42"); len(got) != 0 {
		t.Errorf("IncompatibleClassesFor(unknown) = %v, want empty", got)
	}
}

func TestAreCompatible_LookupIsSymmetric(t *testing.T) {
	classes := Classes()
	for _, a := range classes {
		for _, b := range classes {
			if AreCompatible(a, b) != AreCompatible(b, a) {
				t.Errorf("AreCompatible(%q, %q) != AreCompatible(%q, %q)", a, b, b, a)
			}
		}
	}
}

// The raw table is one-sided for a few pairs. The two-direction lookup
// neutralizes this, but the data itself should not drift silently: this test
// pins the exact set of one-sided entries.
func TestRuleTable_KnownOneSidedEntries(t *testing.T) {
	listed := func(class, other string) bool {
		for _, c := range IncompatibleClassesFor(class) {
			if c == other {
				return true
			}
		}
		return false
	}

	var oneSided []string
	classes := Classes()
	for i, a := range classes {
		for _, b := range classes[i+1:] {
			if listed(a, b) != listed(b, a) {
				oneSided = append(oneSided, a+"|"+b)
			}
		}
	}
	sort.Strings(oneSided)

	want := []string{
		"Classe 1|Classe 2.3",
		"Classe 1|Classe 7",
		"Classe 4.3|Classe 8",
	}
	if len(oneSided) != len(want) {
		t.Fatalf("one-sided pairs = %v, want %v", oneSided, want)
	}
	for i := range want {
		if oneSided[i] != want[i] {
			t.Errorf("one-sided pair %d = %q, want %q", i, oneSided[i], want[i])
		}
	}
}

func TestAreCompatible_SelfConsistency(t *testing.T) {
	for _, class := range Classes() {
		selfListed := false
		for _, c := range IncompatibleClassesFor(class) {
			if c == class {
				selfListed = true
			}
		}
		if AreCompatible(class, class) != !selfListed {
			t.Errorf("AreCompatible(%q, %q) inconsistent with its own rule", class, class)
		}
	}
}

func TestCheckGroupCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		classes       []string
		compatible    bool
		conflictCount int
	}{
		{"empty load", []string{}, true, 0},
		{"single class", []string{"Classe 3"}, true, 0},
		{"non-dangerous entries filtered", []string{"", "Classe 3", ""}, true, 0},
		{"explosives with flammable liquids", []string{"Classe 1", "Classe 3"}, false, 1},
		{"exactly one conflicting pair among three", []string{"Classe 3", "Classe 6.1", "Classe 5.1"}, false, 1},
		{"all conflicts reported", []string{"Classe 1", "Classe 3", "Classe 5.1"}, false, 3},
		{"compatible trio", []string{"Classe 2.2", "Classe 6.1", "Classe 9"}, true, 0},
		{"one-sided entry still refused", []string{"Classe 8", "Classe 4.3"}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckGroupCompatibility(tt.classes)
			if got.Compatible != tt.compatible {
				t.Errorf("Compatible = %v, want %v", got.Compatible, tt.compatible)
			}
			if len(got.Conflicts) != tt.conflictCount {
				t.Errorf("conflicts = %d, want %d (%v)", len(got.Conflicts), tt.conflictCount, got.Conflicts)
			}
		})
	}
}

func TestCheckGroupCompatibility_ConflictDescription(t *testing.T) {
	got := CheckGroupCompatibility([]string{"Classe 1", "Classe 3"})
	if len(got.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(got.Conflicts))
	}
	c := got.Conflicts[0]
	if c.ClassA != "Classe 1" || c.ClassB != "Classe 3" {
		t.Errorf("conflict pair = (%q, %q)", c.ClassA, c.ClassB)
	}
	want := "Matières et objets explosibles incompatible avec Liquides inflammables"
	if c.Description != want {
		t.Errorf("description = %q, want %q", c.Description, want)
	}
}

func TestDescriptionFor_FallsBackToRawClass(t *testing.T) {
	if got := DescriptionFor("Classe 42"); got != "Classe 42" {
		t.Errorf("DescriptionFor(unknown) = %q", got)
	}
}

func TestClasses_SortedAndComplete(t *testing.T) {
	classes := Classes()
	if len(classes) != 15 {
		t.Fatalf("expected 15 classes, got %d", len(classes))
	}
	if !sort.StringsAreSorted(classes) {
		t.Errorf("Classes() not sorted: %v", classes)
	}
	for _, c := range classes {
		if !strings.HasPrefix(c, "Classe ") {
			t.Errorf("unexpected class identifier %q", c)
		}
	}
}
