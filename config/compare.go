package config

import (
	"fmt"
	"sort"
	"strings"
)

// DifferenceKind classifies one comparison finding.
type DifferenceKind string

const (
	DifferenceMissingLeft  DifferenceKind = "missing-left"
	DifferenceMissingRight DifferenceKind = "missing-right"
	DifferenceValue        DifferenceKind = "value"
)

// Difference is one divergence between two configuration mappings,
// addressed by dotted key path.
type Difference struct {
	Path  string
	Kind  DifferenceKind
	Left  any
	Right any
}

func (diff Difference) String() string {
	switch diff.Kind {
	case DifferenceMissingLeft:
		return fmt.Sprintf("%s: only on the right: %v", diff.Path, diff.Right)
	case DifferenceMissingRight:
		return fmt.Sprintf("%s: only on the left: %v", diff.Path, diff.Left)
	}
	return fmt.Sprintf("%s: %v != %v", diff.Path, diff.Left, diff.Right)
}

// Compare reports every path where two resolved configurations diverge,
// skipping the given dotted paths and their subtrees. An empty result
// means the configurations are equivalent.
func Compare(left, right *Configuration, ignore []string) []Difference {
	return CompareMaps(left.values, right.values, ignore)
}

// CompareMaps is Compare over raw mappings. Leaf values compare deeply:
// lists element-wise in order, nested mappings by key and value.
func CompareMaps(left, right map[string]any, ignore []string) []Difference {
	flatLeft := map[string]any{}
	flattenMap(left, "", flatLeft)

	flatRight := map[string]any{}
	flattenMap(right, "", flatRight)

	var diffs []Difference
	for path, value := range flatLeft {
		if ignored(path, ignore) {
			continue
		}

		other, ok := flatRight[path]
		if !ok {
			diffs = append(diffs, Difference{
				Path: path,
				Kind: DifferenceMissingRight,
				Left: value,
			})
			continue
		}

		if !valuesEqual(value, other) {
			diffs = append(diffs, Difference{
				Path:  path,
				Kind:  DifferenceValue,
				Left:  value,
				Right: other,
			})
		}
	}

	for path, value := range flatRight {
		if ignored(path, ignore) {
			continue
		}

		if _, ok := flatLeft[path]; !ok {
			diffs = append(diffs, Difference{
				Path:  path,
				Kind:  DifferenceMissingLeft,
				Right: value,
			})
		}
	}

	sort.Slice(diffs, func(i, j int) bool {
		return diffs[i].Path < diffs[j].Path
	})
	return diffs
}

func ignored(path string, ignore []string) bool {
	for _, prefix := range ignore {
		if path == prefix || strings.HasPrefix(path, prefix+".") {
			return true
		}
	}
	return false
}
