package fsnode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/arbor/pkg/tree"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unable to write %s: %v", path, err)
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "hello")

	node, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if node.Kind() != tree.KindFile {
		t.Errorf("Kind() = %v, want KindFile", node.Kind())
	}
	if node.Id() == "" {
		t.Error("expected a non-empty Id for a regular file")
	}
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	node, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if node.Kind() != tree.KindDirectory {
		t.Errorf("Kind() = %v, want KindDirectory", node.Kind())
	}
}

func TestIdenticalContentSameId(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	writeFile(t, pathA, "identical")
	writeFile(t, pathB, "identical")

	nodeA, err := Open(pathA)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	nodeB, err := Open(pathB)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if nodeA.Id() != nodeB.Id() {
		t.Error("two files with identical content should have equal Ids")
	}
}

func TestDifferentContentDifferentId(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	writeFile(t, pathA, "one")
	writeFile(t, pathB, "two")

	nodeA, _ := Open(pathA)
	nodeB, _ := Open(pathB)
	if nodeA.Id() == nodeB.Id() {
		t.Error("files with different content should have different Ids")
	}
}

func TestDirectoryEntriesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		writeFile(t, filepath.Join(dir, name), name)
	}

	node, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	entries, err := node.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"alpha", "bravo", "charlie"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestUnchangedDirectorySnapshotsHaveEqualId(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "x.txt"), "content")
	writeFile(t, filepath.Join(dirB, "x.txt"), "content")
	if err := os.Mkdir(filepath.Join(dirA, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dirB, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dirA, "sub", "y.txt"), "nested")
	writeFile(t, filepath.Join(dirB, "sub", "y.txt"), "nested")

	nodeA, err := Open(dirA)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	nodeB, err := Open(dirB)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if nodeA.Id() != nodeB.Id() {
		t.Error("two structurally identical directory trees should have equal Ids")
	}
}

func TestOpenChildAndContents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "payload")

	node, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	asDir, ok := tree.Node(node).(tree.Directory)
	if !ok {
		t.Fatal("expected node to implement tree.Directory")
	}
	child, err := asDir.OpenChild("a.txt")
	if err != nil {
		t.Fatalf("OpenChild failed: %v", err)
	}
	file, ok := child.(tree.File)
	if !ok {
		t.Fatal("expected child to implement tree.File")
	}
	stream, err := file.Contents()
	if err != nil {
		t.Fatalf("Contents failed: %v", err)
	}
	defer stream.Close()
	data := make([]byte, 7)
	if _, err := stream.Read(data); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("contents = %q, want payload", data)
	}
}

func TestPropertiesReportsUnixMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "x")
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}

	node, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	props, err := node.Properties()
	if err != nil {
		t.Fatalf("Properties failed: %v", err)
	}
	value, ok := props.Get("unix:mode")
	if !ok {
		t.Fatal("expected a unix:mode property")
	}
	if string(value) != "640" {
		t.Errorf("unix:mode = %q, want 640", value)
	}
}

func TestStoreDistanceUnrelatedAcrossKinds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "content")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	entries, err := root.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}

	var fileId, dirId tree.Id
	for _, e := range entries {
		if e.Name == "a.txt" {
			fileId = e.Id
		} else {
			dirId = e.Id
		}
	}

	store := &Store{Root: root}
	if _, related := store.Distance(fileId, dirId); related {
		t.Error("a file Id and a directory Id should never be reported as related")
	}
	if distance, related := store.Distance(fileId, fileId); !related || distance != 0 {
		t.Errorf("Distance(x, x) = (%d, %v), want (0, true)", distance, related)
	}
}

func TestStoreNodeId(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "sub", "a.txt"), "content")

	root, err := Open(dir)
	require.NoError(t, err)
	store := &Store{Root: root}

	id, err := store.NodeId(root, "sub/a.txt")
	require.NoError(t, err)

	direct, err := Open(filepath.Join(dir, "sub", "a.txt"))
	require.NoError(t, err)
	require.Equal(t, direct.Id(), id, "NodeId should resolve to the same Id as opening the path directly")
}
