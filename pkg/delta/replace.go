package delta

import (
	"github.com/arbortree/arbor/pkg/path"
	"github.com/arbortree/arbor/pkg/tree"
)

// bestAncestor searches source's entries for the one closest (by
// store.Distance) to target, breaking ties by earliest source-list
// position, per §4.E steps 1-2. It reports false if no entry shares any
// lineage with target at all.
func (w *walker) bestAncestor(sourceEntries []tree.Entry, target tree.Entry) (tree.Entry, bool) {
	var best tree.Entry
	var bestDistance uint64
	found := false
	for _, candidate := range sourceEntries {
		distance, related := w.store.Distance(target.Id, candidate.Id)
		if !related {
			continue
		}
		if !found || distance < bestDistance {
			best, bestDistance, found = candidate, distance, true
		}
	}
	return best, found
}

// resolveReplace implements §4.E for a same-name pair whose Ids differ.
// sourceEntries is the full entry list of the directory source belongs to
// (not just the single matching entry), since the search for a related
// ancestor ranges over the whole directory rather than the matching name
// alone.
func (w *walker) resolveReplace(source, target tree.Directory, dirBaton any, sourceRelpath string, sourceEntries []tree.Entry, targetEntry tree.Entry) error {
	targetChild, err := target.OpenChild(targetEntry.Name)
	if err != nil {
		return wrap(CodeIOUpstream, err, "open target entry "+targetEntry.Name)
	}
	targetKind := targetChild.Kind()

	ancestorEntry, found := w.bestAncestor(sourceEntries, targetEntry)
	if found {
		ancestorNode, err := source.OpenChild(ancestorEntry.Name)
		if err != nil {
			return wrap(CodeIOUpstream, err, "open source ancestor "+ancestorEntry.Name)
		}
		if ancestorNode.Kind() == targetKind {
			ancestor := &Ancestor{
				Relpath: path.Join(path.KindRelpath, sourceRelpath, ancestorEntry.Name, path.NativeStyle),
				Version: ancestorNode.Version(),
			}
			switch targetKind {
			case tree.KindFile:
				return w.replaceFile(targetChild.(tree.File), dirBaton, targetEntry.Name, ancestor, ancestorNode.(tree.File))
			case tree.KindDirectory:
				// The recursion walks the ancestor's subtree, so its
				// source relpath is the ancestor's, not the target name's.
				return w.replaceDirectory(target, dirBaton, targetEntry.Name, ancestor, ancestorNode.(tree.Directory), ancestor.Relpath)
			}
		}
	}

	// From-scratch: no related ancestor, or the best match is the wrong
	// kind (§9 open question (ii) forbids searching further afield).
	childRelpath := path.Join(path.KindRelpath, sourceRelpath, targetEntry.Name, path.NativeStyle)
	switch targetKind {
	case tree.KindFile:
		return w.replaceFile(targetChild.(tree.File), dirBaton, targetEntry.Name, nil, nil)
	case tree.KindDirectory:
		return w.replaceDirectory(target, dirBaton, targetEntry.Name, nil, nil, childRelpath)
	default:
		return newError(CodeInvariant, "unknown node kind for "+targetEntry.Name)
	}
}

func (w *walker) replaceFile(targetFile tree.File, dirBaton any, name string, ancestor *Ancestor, ancestorFile tree.File) error {
	fileBaton, err := w.editor.ReplaceFile(name, dirBaton, ancestor)
	if err != nil {
		return wrap(CodeIOUpstream, err, "replace file "+name)
	}
	if err := w.diffFile(ancestorFile, targetFile, fileBaton); err != nil {
		return err
	}
	if err := w.editor.CloseFile(fileBaton); err != nil {
		return wrap(CodeIOUpstream, err, "close file "+name)
	}
	return nil
}

func (w *walker) replaceDirectory(target tree.Directory, dirBaton any, name string, ancestor *Ancestor, ancestorDir tree.Directory, childRelpath string) error {
	targetSubdir, err := target.OpenChild(name)
	if err != nil {
		return wrap(CodeIOUpstream, err, "open target directory "+name)
	}
	childDirBaton, err := w.editor.ReplaceDirectory(name, dirBaton, ancestor)
	if err != nil {
		return wrap(CodeIOUpstream, err, "replace directory "+name)
	}
	if err := w.diffDirectory(ancestorDir, targetSubdir.(tree.Directory), childDirBaton, childRelpath); err != nil {
		return err
	}
	if err := w.editor.CloseDirectory(childDirBaton); err != nil {
		return wrap(CodeIOUpstream, err, "close directory "+name)
	}
	return nil
}
