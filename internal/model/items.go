package model

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// List is the ordered set of wheel labels.
// Order is insertion order and decides sector position and color.
// No two labels are equal (exact, case-sensitive match after normalization).
type List struct {
	labels []string
}

// FromLabels rebuilds a list from persisted labels, dropping blanks and
// duplicates so a hand-edited slot cannot break the uniqueness rule.
func FromLabels(labels []string) *List {
	l := &List{labels: make([]string, 0, len(labels))}
	for _, s := range labels {
		l.Add(s)
	}
	return l
}

// Clean trims and NFC-normalizes a raw label.
func Clean(label string) string {
	return strings.TrimSpace(norm.NFC.String(label))
}

// Add appends label and reports whether the list changed.
// Empty (after trimming) and duplicate labels are ignored.
func (l *List) Add(label string) bool {
	label = Clean(label)
	if label == "" || l.Index(label) >= 0 {
		return false
	}
	l.labels = append(l.labels, label)
	return true
}

// Remove deletes the label at i. Callers only pass indexes they got from the
// list; an out-of-range index is reported as false and changes nothing.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= len(l.labels) {
		return false
	}
	l.labels = slices.Delete(l.labels, i, i+1)
	return true
}

// Clear empties the list.
func (l *List) Clear() { l.labels = l.labels[:0] }

// Index returns the position of label, or -1.
func (l *List) Index(label string) int { return slices.Index(l.labels, label) }

func (l *List) Len() int { return len(l.labels) }

func (l *List) At(i int) string { return l.labels[i] }

// Labels returns a copy in insertion order.
func (l *List) Labels() []string { return slices.Clone(l.labels) }
