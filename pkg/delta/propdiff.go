package delta

import (
	"bytes"

	"github.com/arbortree/arbor/pkg/tree"
)

// propertyChangeFunc is the callback shape used by diffProperties: name is
// the property name, value is the new value (meaningless when deleted is
// true), and deleted indicates a source-only name being removed.
type propertyChangeFunc func(name string, value []byte, deleted bool) error

// diffProperties performs the ordered two-way merge described in §4.C: a
// lockstep walk of two key-sorted property lists, emitting exactly one
// change callback per differing or one-sided name, in ascending name
// order. An absent (nil) source list is treated as empty without
// allocating one.
func diffProperties(source, target tree.PropertyList, change propertyChangeFunc) error {
	source = source.SortedCopy()
	target = target.SortedCopy()

	i, j := 0, 0
	for i < len(source) && j < len(target) {
		switch {
		case source[i].Name == target[j].Name:
			if !bytes.Equal(source[i].Value, target[j].Value) {
				if err := change(target[j].Name, target[j].Value, false); err != nil {
					return err
				}
			}
			i++
			j++
		case source[i].Name < target[j].Name:
			if err := change(source[i].Name, nil, true); err != nil {
				return err
			}
			i++
		default:
			if err := change(target[j].Name, target[j].Value, false); err != nil {
				return err
			}
			j++
		}
	}
	for ; i < len(source); i++ {
		if err := change(source[i].Name, nil, true); err != nil {
			return err
		}
	}
	for ; j < len(target); j++ {
		if err := change(target[j].Name, target[j].Value, false); err != nil {
			return err
		}
	}
	return nil
}
