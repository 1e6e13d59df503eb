package delta

import (
	"bytes"
	"fmt"

	"github.com/arbortree/arbor/pkg/textdelta"
)

// recordingEditor implements Editor, logging every call as a string and
// reconstructing each file's final contents from the window sequence it is
// driven with, so tests can assert both on the call sequence and on the
// resulting bytes without a real backing store.
type recordingEditor struct {
	calls   []string
	batons  int
	byName  map[string][]byte // entry name -> ancestor bytes to apply windows against, supplied by the test up front
	sources map[int][]byte    // fileBaton -> ancestor bytes to apply windows against
	results map[int][]byte    // fileBaton -> reconstructed contents
}

func newRecordingEditor(ancestorBytesByName map[string][]byte) *recordingEditor {
	return &recordingEditor{
		byName:  ancestorBytesByName,
		sources: make(map[int][]byte),
		results: make(map[int][]byte),
	}
}

func (e *recordingEditor) nextBaton() int {
	e.batons++
	return e.batons
}

func (e *recordingEditor) ReplaceRoot(ancestor *Ancestor, editBaton any) (any, error) {
	e.calls = append(e.calls, "replace-root")
	return e.nextBaton(), nil
}

func (e *recordingEditor) ReplaceDirectory(name string, parentBaton any, ancestor *Ancestor) (any, error) {
	if ancestor != nil {
		e.calls = append(e.calls, fmt.Sprintf("replace-directory %s <- %s", name, ancestor.Relpath))
	} else {
		e.calls = append(e.calls, "replace-directory "+name+" <- scratch")
	}
	return e.nextBaton(), nil
}

func (e *recordingEditor) AddDirectory(name string, parentBaton any) (any, error) {
	e.calls = append(e.calls, "add-directory "+name)
	return e.nextBaton(), nil
}

func (e *recordingEditor) ReplaceFile(name string, parentBaton any, ancestor *Ancestor) (any, error) {
	baton := e.nextBaton()
	if ancestor != nil {
		// A real editor resolves the ancestor's content from its own
		// backing store via ancestor.Relpath; the test fixture's "store"
		// is just this name-keyed map.
		e.sources[baton] = e.byName[ancestor.Relpath]
		e.calls = append(e.calls, fmt.Sprintf("replace-file %s <- %s", name, ancestor.Relpath))
	} else {
		e.calls = append(e.calls, "replace-file "+name+" <- scratch")
	}
	return baton, nil
}

func (e *recordingEditor) AddFile(name string, parentBaton any) (any, error) {
	baton := e.nextBaton()
	e.calls = append(e.calls, "add-file "+name)
	return baton, nil
}

func (e *recordingEditor) Delete(name string, parentBaton any) error {
	e.calls = append(e.calls, "delete "+name)
	return nil
}

func (e *recordingEditor) ChangeDirProp(dirBaton any, name string, value []byte, deleted bool) error {
	e.calls = append(e.calls, fmt.Sprintf("change-dir-prop %v %s deleted=%v", dirBaton, name, deleted))
	return nil
}

func (e *recordingEditor) ChangeEntryProp(dirBaton any, entryName, name string, value []byte, deleted bool) error {
	e.calls = append(e.calls, fmt.Sprintf("change-entry-prop %v %s.%s deleted=%v", dirBaton, entryName, name, deleted))
	return nil
}

func (e *recordingEditor) ChangeFileProp(fileBaton any, name string, value []byte, deleted bool) error {
	e.calls = append(e.calls, fmt.Sprintf("change-file-prop %v %s deleted=%v", fileBaton, name, deleted))
	return nil
}

func (e *recordingEditor) ApplyTextDelta(fileBaton any) (textdelta.Handler, error) {
	baton := fileBaton.(int)
	var windows []*textdelta.Window
	return func(window *textdelta.Window) error {
		if window != nil {
			windows = append(windows, window)
			return nil
		}
		var i int
		next := func() (*textdelta.Window, error) {
			if i >= len(windows) {
				return nil, nil
			}
			w := windows[i]
			i++
			return w, nil
		}
		var out bytes.Buffer
		if err := textdelta.Apply(bytes.NewReader(e.sources[baton]), next, &out); err != nil {
			return err
		}
		e.results[baton] = out.Bytes()
		return nil
	}, nil
}

func (e *recordingEditor) CloseDirectory(dirBaton any) error {
	e.calls = append(e.calls, fmt.Sprintf("close-directory %v", dirBaton))
	return nil
}

func (e *recordingEditor) CloseFile(fileBaton any) error {
	e.calls = append(e.calls, fmt.Sprintf("close-file %v", fileBaton))
	return nil
}
