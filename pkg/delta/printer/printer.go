// Package printer implements a delta.Editor that renders the call
// sequence the engine drives as a human-readable, optionally colorized
// change summary, in the vein of a version-control "status" or "diff
// --summarize" report. It exists to give SPEC_FULL.md's cmd/arbor diff
// subcommand something concrete to drive and to make the engine's output
// inspectable without a real storage backend.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arbortree/arbor/pkg/delta"
	"github.com/arbortree/arbor/pkg/textdelta"
)

// dirState is the baton type ReplaceRoot/ReplaceDirectory/AddDirectory
// hand back: just enough to reconstruct the relpath of every entry
// beneath it and to know whether this directory itself was newly added.
type dirState struct {
	relpath string
	added   bool
}

// fileState is the baton type ReplaceFile/AddFile hand back; it
// accumulates the byte count described by the text-delta windows driven
// into it so CloseFile can report a size.
type fileState struct {
	relpath  string
	added    bool
	replaced bool
	bytes    int64
}

// Printer implements delta.Editor by writing a line per entry touched to
// Out, colorized the same way the teacher colorizes cmd/mutagen's sync
// list/monitor output: errors/deletions in red, additions in green,
// modifications in yellow, all gated on whether Out looks like a color
// terminal.
type Printer struct {
	// Out is the destination for rendered lines.
	Out io.Writer
	// Color forces color on or off; if nil, color is auto-detected from
	// Out via go-isatty when Out is an *os.File.
	Color *bool
}

// NewAuto builds a Printer that writes to out, auto-detecting color
// support the way cmd/terminal_windows.go and the teacher's cmd package
// do: only enable it if out is a terminal.
func NewAuto(out io.Writer, fd uintptr) *Printer {
	enabled := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return &Printer{Out: out, Color: &enabled}
}

func (p *Printer) colorEnabled() bool {
	if p.Color != nil {
		return *p.Color
	}
	if f, ok := p.Out.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return true
}

func (p *Printer) paint(c *color.Color, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if p.colorEnabled() {
		c.Fprintln(p.Out, line)
		return
	}
	fmt.Fprintln(p.Out, line)
}

var (
	addColor    = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	replaceColor = color.New(color.FgYellow)
	propColor   = color.New(color.FgCyan)
)

// ReplaceRoot implements delta.Editor.ReplaceRoot.
func (p *Printer) ReplaceRoot(ancestor *delta.Ancestor, editBaton any) (any, error) {
	return &dirState{relpath: ""}, nil
}

// ReplaceDirectory implements delta.Editor.ReplaceDirectory.
func (p *Printer) ReplaceDirectory(name string, parentBaton any, ancestor *delta.Ancestor) (any, error) {
	parent := parentBaton.(*dirState)
	relpath := join(parent.relpath, name)
	if ancestor != nil {
		p.paint(replaceColor, "R   %s/ (from %s@%d)", relpath, ancestor.Relpath, ancestor.Version)
	} else {
		p.paint(replaceColor, "R   %s/ (from scratch)", relpath)
	}
	return &dirState{relpath: relpath}, nil
}

// AddDirectory implements delta.Editor.AddDirectory.
func (p *Printer) AddDirectory(name string, parentBaton any) (any, error) {
	parent := parentBaton.(*dirState)
	relpath := join(parent.relpath, name)
	p.paint(addColor, "A   %s/", relpath)
	return &dirState{relpath: relpath, added: true}, nil
}

// ReplaceFile implements delta.Editor.ReplaceFile.
func (p *Printer) ReplaceFile(name string, parentBaton any, ancestor *delta.Ancestor) (any, error) {
	parent := parentBaton.(*dirState)
	relpath := join(parent.relpath, name)
	return &fileState{relpath: relpath, replaced: true}, nil
}

// AddFile implements delta.Editor.AddFile.
func (p *Printer) AddFile(name string, parentBaton any) (any, error) {
	parent := parentBaton.(*dirState)
	relpath := join(parent.relpath, name)
	return &fileState{relpath: relpath, added: true}, nil
}

// Delete implements delta.Editor.Delete.
func (p *Printer) Delete(name string, parentBaton any) error {
	parent := parentBaton.(*dirState)
	p.paint(deleteColor, "D   %s", join(parent.relpath, name))
	return nil
}

// ChangeDirProp implements delta.Editor.ChangeDirProp.
func (p *Printer) ChangeDirProp(dirBaton any, name string, value []byte, deleted bool) error {
	dir := dirBaton.(*dirState)
	return p.changeProp(dir.relpath, name, value, deleted)
}

// ChangeEntryProp implements delta.Editor.ChangeEntryProp.
func (p *Printer) ChangeEntryProp(dirBaton any, entryName, name string, value []byte, deleted bool) error {
	dir := dirBaton.(*dirState)
	return p.changeProp(join(dir.relpath, entryName)+" (entry)", name, value, deleted)
}

// ChangeFileProp implements delta.Editor.ChangeFileProp.
func (p *Printer) ChangeFileProp(fileBaton any, name string, value []byte, deleted bool) error {
	file := fileBaton.(*fileState)
	return p.changeProp(file.relpath, name, value, deleted)
}

func (p *Printer) changeProp(relpath, name string, value []byte, deleted bool) error {
	if deleted {
		p.paint(propColor, "    %s: -%s", relpath, name)
		return nil
	}
	p.paint(propColor, "    %s: %s = %s", relpath, name, value)
	return nil
}

// ApplyTextDelta implements delta.Editor.ApplyTextDelta, returning a
// handler that simply tallies the reconstructed byte count; the window
// contents themselves aren't rendered since an editor consumer is
// expected to reconstruct bytes, not display them.
func (p *Printer) ApplyTextDelta(fileBaton any) (textdelta.Handler, error) {
	file := fileBaton.(*fileState)
	return func(window *textdelta.Window) error {
		if window == nil {
			return nil
		}
		file.bytes += window.Length()
		return nil
	}, nil
}

// CloseDirectory implements delta.Editor.CloseDirectory.
func (p *Printer) CloseDirectory(dirBaton any) error {
	return nil
}

// CloseFile implements delta.Editor.CloseFile.
func (p *Printer) CloseFile(fileBaton any) error {
	file := fileBaton.(*fileState)
	switch {
	case file.added:
		p.paint(addColor, "A   %s (%s)", file.relpath, humanize.Bytes(uint64(file.bytes)))
	case file.replaced:
		p.paint(replaceColor, "R   %s (%s)", file.relpath, humanize.Bytes(uint64(file.bytes)))
	}
	return nil
}

func join(relpath, name string) string {
	if relpath == "" {
		return name
	}
	return relpath + "/" + name
}
