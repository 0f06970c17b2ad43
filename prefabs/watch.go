package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
// Editors often save in several writes.
const settle = 100 * time.Millisecond

// Change is one settled edit to a spec or script file.
type Change struct {
	Name   string
	Script bool
}

// Watcher reports edits to prefab specs and encounter scripts. Changes and
// Errors are closed once the watcher stops.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs; with none given it watches the prefab directory
// and its scripts subdirectory.
func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{Dir, filepath.Join(Dir, "scripts")}
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changes)
	defer close(w.Errors)

	pending := make(map[string]time.Time)
	flush := time.NewTicker(settle / 2)
	defer flush.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || classify(ev.Name) == fileOther {
				continue
			}
			pending[ev.Name] = time.Now()

		case <-flush.C:
			now := time.Now()
			for file, at := range pending {
				if now.Sub(at) < settle {
					continue
				}
				delete(pending, file)
				change := Change{Name: Name(file), Script: classify(file) == fileScript}
				select {
				case w.Changes <- change:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

type fileKind int

const (
	fileOther fileKind = iota
	fileSpec
	fileScript
)

func classify(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return fileSpec
	case ".tengo":
		return fileScript
	default:
		return fileOther
	}
}
