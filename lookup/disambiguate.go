package lookup

// Selector presents candidates to the operator. The prompt layer implements
// it on top of the terminal; tests implement it with canned answers.
type Selector[T any] interface {
	// Confirm presents a single candidate for explicit accept or reject.
	Confirm(candidate T) bool

	// Pick presents multiple candidates, in service response order, for a
	// single selection. It returns the chosen index, or false when the
	// operator takes the "none of these" escape.
	Pick(candidates []T) (int, bool)
}

// Disambiguate resolves a candidate list against operator input. Zero
// candidates is a terminal no-match; one candidate must be explicitly
// accepted; more than one is offered as a ranked list with a "none of these"
// escape. A rejected or escaped lookup resolves to no match, not a retry.
// Both adapters share this policy; it is the only branching between a lookup
// and the record.
func Disambiguate[T any](candidates []T, sel Selector[T]) (T, bool) {
	var zero T
	switch len(candidates) {
	case 0:
		return zero, false
	case 1:
		if sel.Confirm(candidates[0]) {
			return candidates[0], true
		}
		return zero, false
	default:
		i, ok := sel.Pick(candidates)
		if !ok || i < 0 || i >= len(candidates) {
			return zero, false
		}
		return candidates[i], true
	}
}
