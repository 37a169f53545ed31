package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must stay unchanged before it is reloaded.
const debounce = 100 * time.Millisecond

// Reload is delivered by a Watcher after the watched file changed.
// Err is set when the new contents could not be loaded; Config is then unset.
type Reload struct {
	Config SleighConfig
	Err    error
}

// Watcher watches a single config file and re-parses it when it changes.
// The parent directory is watched so that rename-on-save editors are seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Reloads.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)

	// The file is loaded once it has been quiet for the debounce period,
	// so a truncate followed by a write yields a single reload of the final contents.
	settle := time.NewTimer(debounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settle.Reset(debounce)
		case <-settle.C:
			cfg, _, err := Load(w.path)
			w.send(Reload{Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: fmt.Errorf("config: watcher: %w", err)})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) send(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}
