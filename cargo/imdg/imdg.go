// Package imdg decides whether dangerous goods may be co-loaded in the same
// container or groupage, based on a static IMDG class segregation table.
//
// The checker is fail-open: an empty class (non-dangerous cargo) or a class
// missing from the table is treated as compatible with everything. Whether
// unknown classes should instead be rejected is an open product decision.
package imdg

import (
	"golang.org/x/exp/slices"
)

// Conflict reports one incompatible pair found in a candidate load.
type Conflict struct {
	ClassA      string `json:"class_a"`
	ClassB      string `json:"class_b"`
	Description string `json:"description"`
}

// GroupResult is the outcome of checking every pair of classes in a load.
type GroupResult struct {
	Compatible bool       `json:"compatible"`
	Conflicts  []Conflict `json:"conflicts"`
}

// AreCompatible reports whether two hazard classes may share a unit. Either
// argument may be empty, meaning a non-dangerous item. The table is not
// perfectly symmetric, so both directions are checked: one side listing the
// other is enough to refuse the pairing.
func AreCompatible(classA, classB string) bool {
	if classA == "" || classB == "" {
		return true
	}

	ruleA, okA := rules[classA]
	ruleB, okB := rules[classB]
	if !okA || !okB {
		return true
	}

	if slices.Contains(ruleA.IncompatibleWith, classB) {
		return false
	}
	if slices.Contains(ruleB.IncompatibleWith, classA) {
		return false
	}
	return true
}

// IncompatibleClassesFor returns the configured incompatible set for a class,
// or an empty slice if the class is unknown.
func IncompatibleClassesFor(class string) []string {
	rule, ok := rules[class]
	if !ok {
		return []string{}
	}
	out := make([]string, len(rule.IncompatibleWith))
	copy(out, rule.IncompatibleWith)
	return out
}

// DescriptionFor returns the human-readable label of a class, falling back to
// the raw identifier when the class has no rule.
func DescriptionFor(class string) string {
	if rule, ok := rules[class]; ok && rule.Description != "" {
		return rule.Description
	}
	return class
}

// CheckGroupCompatibility tests every unordered pair among the given classes.
// Empty entries are skipped. All conflicts are collected, not just the first:
// the operator needs the complete list to understand a refusal. n is a handful
// of classes per shipment, so the quadratic scan is fine.
func CheckGroupCompatibility(classes []string) GroupResult {
	present := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			present = append(present, c)
		}
	}

	result := GroupResult{Compatible: true, Conflicts: []Conflict{}}
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			if AreCompatible(present[i], present[j]) {
				continue
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				ClassA:      present[i],
				ClassB:      present[j],
				Description: DescriptionFor(present[i]) + " incompatible avec " + DescriptionFor(present[j]),
			})
		}
	}
	result.Compatible = len(result.Conflicts) == 0
	return result
}

// Classes returns all known hazard classes in sorted order.
func Classes() []string {
	out := make([]string, 0, len(rules))
	for class := range rules {
		out = append(out, class)
	}
	slices.Sort(out)
	return out
}
