package collections

type Set[V comparable] map[V]struct{}

// NewSet returns a Set holding each of the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Len returns the number of distinct elements in the set
func (set Set[V]) Len() int {
	return len(set)
}

// Multiset counts occurrences of each element. Unlike Set, taking an element
// consumes one occurrence of it.
type Multiset[V comparable] map[V]int

// NewMultiset returns a Multiset with one occurrence per given value
func NewMultiset[V comparable](values ...V) Multiset[V] {
	multiset := make(Multiset[V], len(values))
	for _, value := range values {
		multiset.Add(value)
	}
	return multiset
}

// Add one occurrence of an element
func (multiset Multiset[V]) Add(value V) {
	multiset[value]++
}

// Count returns how many occurrences of the element remain
func (multiset Multiset[V]) Count(value V) int {
	return multiset[value]
}

// Take consumes one occurrence of the element, reporting whether one was left
func (multiset Multiset[V]) Take(value V) bool {
	if multiset[value] == 0 {
		return false
	}
	multiset[value]--
	if multiset[value] == 0 {
		delete(multiset, value)
	}
	return true
}

// Overlap returns the size of the multiset intersection: the sum over every
// element of the smaller of its two counts
func (multiset Multiset[V]) Overlap(other Multiset[V]) int {
	total := 0
	for value, count := range multiset {
		if otherCount := other[value]; otherCount < count {
			total += otherCount
		} else {
			total += count
		}
	}
	return total
}
