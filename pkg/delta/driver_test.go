package delta

import (
	"bytes"
	"testing"

	"github.com/arbortree/arbor/pkg/tree"
)

func containsCall(calls []string, want string) bool {
	for _, c := range calls {
		if c == want {
			return true
		}
	}
	return false
}

func TestDiffAddOnly(t *testing.T) {
	source := &memDir{id: "dir:empty"}
	target := &memDir{
		id: "dir:1",
		kids: []memEntry{
			{name: "a.txt", node: &memFile{id: "file:a", contents: []byte("hello")}},
		},
	}

	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	if !containsCall(editor.calls, "add-file a.txt") {
		t.Errorf("expected add-file call, got %v", editor.calls)
	}
	for _, baton := range editor.results {
		if !bytes.Equal(baton, []byte("hello")) {
			t.Errorf("reconstructed file = %q, want hello", baton)
		}
	}
}

func TestDiffDeleteOnly(t *testing.T) {
	source := &memDir{
		id: "dir:1",
		kids: []memEntry{
			{name: "a.txt", node: &memFile{id: "file:a", contents: []byte("hello")}},
		},
	}
	target := &memDir{id: "dir:empty"}

	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !containsCall(editor.calls, "delete a.txt") {
		t.Errorf("expected delete call, got %v", editor.calls)
	}
}

func TestDiffUnchangedSubtreeSkipsDescent(t *testing.T) {
	// Source and target share the exact same Id for a nested directory;
	// the differ must not open it at all (no replace-directory call for
	// "sub", since the entry Ids are equal and the lockstep walk never
	// invokes resolveReplace for it).
	shared := &memDir{id: "dir:shared", kids: []memEntry{
		{name: "x.txt", node: &memFile{id: "file:x", contents: []byte("x")}},
	}}
	source := &memDir{id: "dir:s", kids: []memEntry{{name: "sub", node: shared}}}
	target := &memDir{id: "dir:t", kids: []memEntry{{name: "sub", node: shared}}}

	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	for _, c := range editor.calls {
		if c != "replace-root" && c != "close-directory 1" {
			t.Errorf("unexpected call for an unchanged subtree: %s", c)
		}
	}
}

func TestDiffReplaceSearchesWholeSourceDirectoryForBestAncestor(t *testing.T) {
	// Both source entries survive to the same-name "b.txt" comparison: the
	// name-matched ancestor ("b.txt", unrelated content) and an unrelated
	// name ("a.txt") that happens to be a much closer match by distance.
	// §4.E requires the search to range over the whole source directory,
	// not just the name-matched entry, so "a.txt" should win.
	source := &memDir{id: "dir:s", kids: []memEntry{
		{name: "a.txt", node: &memFile{id: "file:a", contents: []byte("hello world")}},
		{name: "b.txt", node: &memFile{id: "file:old", contents: []byte("xyz")}},
	}}
	target := &memDir{id: "dir:t", kids: []memEntry{
		{name: "b.txt", node: &memFile{id: "file:bnew", contents: []byte("hello world!")}},
	}}

	store := &memStore{distances: map[[2]tree.Id]uint64{
		{"file:bnew", "file:a"}:   1,
		{"file:bnew", "file:old"}: 100,
	}}
	editor := newRecordingEditor(map[string][]byte{"a.txt": []byte("hello world")})
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	if !containsCall(editor.calls, "delete a.txt") {
		t.Errorf("expected a.txt to be deleted as a one-sided source entry, got %v", editor.calls)
	}
	if !containsCall(editor.calls, "replace-file b.txt <- a.txt") {
		t.Errorf("expected b.txt to be replaced against the closer ancestor a.txt, got %v", editor.calls)
	}
	for _, result := range editor.results {
		if bytes.Equal(result, []byte("hello world!")) {
			return
		}
	}
	t.Error("no file baton reconstructed to the expected target contents")
}

func TestDiffReplaceFallsThroughOnKindMismatch(t *testing.T) {
	// The only related source entry is a directory, but the target entry
	// is a file; the resolver must fall through to from-scratch rather
	// than replacing against a kind-mismatched ancestor.
	source := &memDir{id: "dir:s", kids: []memEntry{
		{name: "a", node: &memDir{id: "dir:a"}},
	}}
	target := &memDir{id: "dir:t", kids: []memEntry{
		{name: "a", node: &memFile{id: "file:a2", contents: []byte("now a file")}},
	}}

	store := &memStore{distances: map[[2]tree.Id]uint64{
		{"file:a2", "dir:a"}: 1,
	}}
	editor := newRecordingEditor(nil)
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !containsCall(editor.calls, "replace-file a <- scratch") {
		t.Errorf("expected a from-scratch replace-file, got %v", editor.calls)
	}
}

func TestDiffPropertyChanges(t *testing.T) {
	source := &memDir{
		id:    "dir:s",
		props: tree.PropertyList{{Name: "unix:mode", Value: []byte("644")}},
	}
	target := &memDir{
		id:    "dir:t",
		props: tree.PropertyList{{Name: "unix:mode", Value: []byte("755")}},
	}
	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !containsCall(editor.calls, "change-dir-prop 1 unix:mode deleted=false") {
		t.Errorf("expected a directory property change call, got %v", editor.calls)
	}
}

func TestDiffEntryPropertyChange(t *testing.T) {
	source := &memDir{id: "dir:s", kids: []memEntry{
		{name: "a.txt", node: &memFile{id: "file:a"}, props: tree.PropertyList{{Name: "svn:eol-style", Value: []byte("native")}}},
	}}
	target := &memDir{id: "dir:t", kids: []memEntry{
		{name: "a.txt", node: &memFile{id: "file:a"}, props: tree.PropertyList{{Name: "svn:eol-style", Value: []byte("LF")}}},
	}}
	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !containsCall(editor.calls, "change-entry-prop 1 a.txt.svn:eol-style deleted=false") {
		t.Errorf("expected an entry property change call, got %v", editor.calls)
	}
	// Since the entry's node Id is unchanged ("file:a" on both sides), no
	// replace/descent should happen for it.
	for _, c := range editor.calls {
		if c == "replace-file a.txt <- scratch" || c == "add-file a.txt" {
			t.Errorf("unexpected file open for an entry whose node Id is unchanged: %s", c)
		}
	}
}

func TestDiffCancellation(t *testing.T) {
	source := &memDir{id: "dir:s"}
	target := &memDir{id: "dir:t"}
	editor := newRecordingEditor(nil)
	store := &memStore{}
	opts := Options{Cancel: func() bool { return true }}
	err := Diff(store, source, target, editor, nil, opts)
	if err != Cancelled {
		t.Errorf("Diff with an always-true cancel predicate = %v, want Cancelled", err)
	}
}

func TestDiffNestedAddRecursesIntoNewDirectory(t *testing.T) {
	source := &memDir{id: "dir:empty"}
	target := &memDir{id: "dir:t", kids: []memEntry{
		{name: "sub", node: &memDir{id: "dir:sub", kids: []memEntry{
			{name: "x.txt", node: &memFile{id: "file:x", contents: []byte("nested")}},
		}}},
	}}
	editor := newRecordingEditor(nil)
	store := &memStore{}
	if err := Diff(store, source, target, editor, nil, Options{}); err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !containsCall(editor.calls, "add-directory sub") {
		t.Errorf("expected add-directory sub, got %v", editor.calls)
	}
	if !containsCall(editor.calls, "add-file x.txt") {
		t.Errorf("expected add-file x.txt nested under sub, got %v", editor.calls)
	}
}
