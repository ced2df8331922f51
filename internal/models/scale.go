package models

// ChoiceScale is an ordered set of response labels. The zero-based index of a
// label is its raw ordinal value.
type ChoiceScale []string

// NewChoiceScale copies labels into a new scale so later edits to the source
// slice do not leak into the scale.
func NewChoiceScale(labels ...string) ChoiceScale {
	scale := make(ChoiceScale, len(labels))
	copy(scale, labels)
	return scale
}

// Len returns the number of points on the scale
func (s ChoiceScale) Len() int {
	return len(s)
}

// Label returns the label at index i, or "" when i is out of range
func (s ChoiceScale) Label(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// IndexOf returns the index of an exactly matching label, or -1
func (s ChoiceScale) IndexOf(label string) int {
	for i, l := range s {
		if l == label {
			return i
		}
	}
	return -1
}
