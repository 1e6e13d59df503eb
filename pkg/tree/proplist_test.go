package tree

import "testing"

func TestSorted(t *testing.T) {
	sorted := PropertyList{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if !sorted.Sorted() {
		t.Error("expected sorted list to report sorted")
	}
	unsorted := PropertyList{{Name: "b"}, {Name: "a"}}
	if unsorted.Sorted() {
		t.Error("expected unsorted list to report unsorted")
	}
	duplicate := PropertyList{{Name: "a"}, {Name: "a"}}
	if duplicate.Sorted() {
		t.Error("expected a list with a duplicate adjacent name to report unsorted")
	}
}

func TestSortedCopy(t *testing.T) {
	list := PropertyList{{Name: "c", Value: []byte("3")}, {Name: "a", Value: []byte("1")}, {Name: "b", Value: []byte("2")}}
	sorted := list.SortedCopy()
	want := []string{"a", "b", "c"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("sorted[%d].Name = %q, want %q", i, sorted[i].Name, name)
		}
	}
	// Original must be untouched.
	if list[0].Name != "c" {
		t.Error("SortedCopy mutated its input")
	}
}

func TestSortedCopyAlreadySortedReturnsSameSlice(t *testing.T) {
	list := PropertyList{{Name: "a"}, {Name: "b"}}
	sorted := list.SortedCopy()
	if &sorted[0] != &list[0] {
		t.Error("expected SortedCopy to return the original slice when already sorted")
	}
}

func TestGet(t *testing.T) {
	list := PropertyList{{Name: "a", Value: []byte("1")}, {Name: "b", Value: []byte("2")}}
	if value, ok := list.Get("a"); !ok || string(value) != "1" {
		t.Errorf("Get(a) = (%q, %v), want (1, true)", value, ok)
	}
	if _, ok := list.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}

func TestKindString(t *testing.T) {
	if KindDirectory.String() != "directory" {
		t.Errorf("KindDirectory.String() = %q", KindDirectory.String())
	}
	if KindFile.String() != "file" {
		t.Errorf("KindFile.String() = %q", KindFile.String())
	}
}
