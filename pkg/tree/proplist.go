package tree

import "sort"

// Property is a single name/value pair within a PropertyList.
type Property struct {
	Name  string
	Value []byte
}

// PropertyList is an ordered mapping from property name to byte-string
// value. Stores are expected to hand the differ a list already sorted by
// name (ascending, byte-wise); Sorted reports whether that invariant
// holds, and SortedCopy repairs it for stores that build lists
// incrementally and can't cheaply keep them sorted.
type PropertyList []Property

// Sorted reports whether the list is already sorted by name.
func (l PropertyList) Sorted() bool {
	for i := 1; i < len(l); i++ {
		if l[i-1].Name >= l[i].Name {
			return false
		}
	}
	return true
}

// SortedCopy returns a copy of the list sorted by name. If the list is
// already sorted, the original is returned unmodified.
func (l PropertyList) SortedCopy() PropertyList {
	if l.Sorted() {
		return l
	}
	result := make(PropertyList, len(l))
	copy(result, l)
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Get returns the value associated with name, and whether it was present.
func (l PropertyList) Get(name string) ([]byte, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}
