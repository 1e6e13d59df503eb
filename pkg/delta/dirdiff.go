package delta

import (
	"github.com/arbortree/arbor/pkg/path"
	"github.com/arbortree/arbor/pkg/tree"
)

// diffDirectory implements §4.D: it emits the directory-property diff for
// the pair, then walks both entry lists in ascending-name lockstep,
// dispatching same-name pairs to the replace resolver (or straight through
// when their Ids already match) and one-sided entries to delete/add.
//
// source may be nil, representing the synthetic empty directory used for
// from-scratch replaces (§4.E step 5); its entries and properties are then
// treated as empty without the store ever being asked for them.
func (w *walker) diffDirectory(source, target tree.Directory, dirBaton any, sourceRelpath string) error {
	sourceProps, err := w.properties(source)
	if err != nil {
		return wrap(CodeIOUpstream, err, "read source directory properties")
	}
	targetProps, err := target.Properties()
	if err != nil {
		return wrap(CodeIOUpstream, err, "read target directory properties")
	}
	if err := diffProperties(sourceProps, targetProps, func(name string, value []byte, deleted bool) error {
		return w.editor.ChangeDirProp(dirBaton, name, value, deleted)
	}); err != nil {
		return err
	}

	sourceEntries, err := w.entries(source)
	if err != nil {
		return wrap(CodeIOUpstream, err, "read source directory entries")
	}
	targetEntries, err := target.Entries()
	if err != nil {
		return wrap(CodeIOUpstream, err, "read target directory entries")
	}

	i, j := 0, 0
	for i < len(sourceEntries) || j < len(targetEntries) {
		if w.opts.cancelled() {
			return Cancelled
		}

		switch {
		case j >= len(targetEntries) || (i < len(sourceEntries) && sourceEntries[i].Name < targetEntries[j].Name):
			if err := w.editor.Delete(sourceEntries[i].Name, dirBaton); err != nil {
				return wrap(CodeIOUpstream, err, "delete entry "+sourceEntries[i].Name)
			}
			i++
		case i >= len(sourceEntries) || targetEntries[j].Name < sourceEntries[i].Name:
			if err := w.addEntry(source, target, dirBaton, sourceRelpath, targetEntries[j]); err != nil {
				return err
			}
			j++
		default:
			entryProps, err := w.entryProperties(source, sourceEntries[i].Name)
			if err != nil {
				return wrap(CodeIOUpstream, err, "read entry properties for "+sourceEntries[i].Name)
			}
			targetEntryProps, err := target.EntryProperties(targetEntries[j].Name)
			if err != nil {
				return wrap(CodeIOUpstream, err, "read target entry properties for "+targetEntries[j].Name)
			}
			name := targetEntries[j].Name
			if err := diffProperties(entryProps, targetEntryProps, func(propName string, value []byte, deleted bool) error {
				return w.editor.ChangeEntryProp(dirBaton, name, propName, value, deleted)
			}); err != nil {
				return err
			}

			if sourceEntries[i].Id != targetEntries[j].Id {
				if err := w.resolveReplace(source, target, dirBaton, sourceRelpath, sourceEntries, targetEntries[j]); err != nil {
					return err
				}
			}
			i++
			j++
		}
	}
	return nil
}

// properties returns source's properties, or an empty list if source is
// the synthetic nil directory of a from-scratch replace.
func (w *walker) properties(source tree.Directory) (tree.PropertyList, error) {
	if source == nil {
		return nil, nil
	}
	return source.Properties()
}

// entries returns source's entries, or an empty list if source is nil.
func (w *walker) entries(source tree.Directory) ([]tree.Entry, error) {
	if source == nil {
		return nil, nil
	}
	return source.Entries()
}

// entryProperties returns the named entry's properties within source, or
// an empty list if source is nil.
func (w *walker) entryProperties(source tree.Directory, name string) (tree.PropertyList, error) {
	if source == nil {
		return nil, nil
	}
	return source.EntryProperties(name)
}

// addEntry handles §4.D's cmp > 0 branch: a target-only entry is opened
// from scratch, regardless of whether anything related exists elsewhere in
// the source tree (§9 open question (ii) says not to search for one).
func (w *walker) addEntry(source, target tree.Directory, dirBaton any, sourceRelpath string, targetEntry tree.Entry) error {
	child, err := target.OpenChild(targetEntry.Name)
	if err != nil {
		return wrap(CodeIOUpstream, err, "open target entry "+targetEntry.Name)
	}

	childRelpath := path.Join(path.KindRelpath, sourceRelpath, targetEntry.Name, path.NativeStyle)

	switch child.Kind() {
	case tree.KindFile:
		fileBaton, err := w.editor.AddFile(targetEntry.Name, dirBaton)
		if err != nil {
			return wrap(CodeIOUpstream, err, "add file "+targetEntry.Name)
		}
		if err := w.diffFile(nil, child.(tree.File), fileBaton); err != nil {
			return err
		}
		if err := w.editor.CloseFile(fileBaton); err != nil {
			return wrap(CodeIOUpstream, err, "close file "+targetEntry.Name)
		}
	case tree.KindDirectory:
		childDirBaton, err := w.editor.AddDirectory(targetEntry.Name, dirBaton)
		if err != nil {
			return wrap(CodeIOUpstream, err, "add directory "+targetEntry.Name)
		}
		if err := w.diffDirectory(nil, child.(tree.Directory), childDirBaton, childRelpath); err != nil {
			return err
		}
		if err := w.editor.CloseDirectory(childDirBaton); err != nil {
			return wrap(CodeIOUpstream, err, "close directory "+targetEntry.Name)
		}
	default:
		return newError(CodeInvariant, "unknown node kind for "+targetEntry.Name)
	}
	return nil
}
