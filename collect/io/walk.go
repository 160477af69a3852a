package io

import (
	"os"
	"path/filepath"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Glob returns the paths matching pattern, as filepath.Glob does.
func Glob(pattern string) (*pull.Slice[string], error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, collecterrors.Wrapf(err, "glob %s", pattern)
	}
	return pull.FromSlice(matches), nil
}

type walkEntry struct {
	path  string
	isDir bool
}

// Paths walks a directory tree in lexical order, root first, reading each
// directory only when the walk reaches it. It ends at the first
// unreadable directory, which Err then reports.
type Paths struct {
	root      string
	pending   []walkEntry
	started   bool
	filesOnly bool
	err       error
	done      bool
}

// Walk returns every file and directory under root, root included.
func Walk(root string) *Paths {
	return &Paths{root: root}
}

// WalkFiles returns every non-directory path under root.
func WalkFiles(root string) *Paths {
	return &Paths{root: root, filesOnly: true}
}

func (p *Paths) Next() (string, bool) {
	if !p.started {
		p.started = true
		info, err := os.Stat(p.root)
		if err != nil {
			p.end(err)
			return "", false
		}
		p.pending = append(p.pending, walkEntry{path: p.root, isDir: info.IsDir()})
	}
	for !p.done && len(p.pending) > 0 {
		e := p.pending[len(p.pending)-1]
		p.pending = p.pending[:len(p.pending)-1]
		if e.isDir {
			entries, err := os.ReadDir(e.path)
			if err != nil {
				p.end(err)
				return "", false
			}
			for i := len(entries) - 1; i >= 0; i-- {
				p.pending = append(p.pending, walkEntry{
					path:  filepath.Join(e.path, entries[i].Name()),
					isDir: entries[i].IsDir(),
				})
			}
			if p.filesOnly {
				continue
			}
		}
		return e.path, true
	}
	p.done = true
	return "", false
}

func (p *Paths) SizeHint() (int, int) {
	if p.done {
		return 0, 0
	}
	if !p.started {
		return 0, -1
	}
	return len(p.pending), -1
}

// Err returns the error that ended the walk, if any.
func (p *Paths) Err() error {
	return p.err
}

func (p *Paths) end(err error) {
	p.done = true
	p.pending = nil
	p.err = collecterrors.Wrap(err, "walk")
}
