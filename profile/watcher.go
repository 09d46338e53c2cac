package profile

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"wedge/log"
)

// Watcher reloads a profile file when it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	mu       sync.RWMutex
	profile  *Profile
	handlers []func(*Profile)
	done     chan struct{}
	stopOnce sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	p, err := Load(path)
	if err != nil {
		w.Close()
		return nil, err
	}

	pw := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		profile: p,
		done:    make(chan struct{}),
	}

	// Watch the directory: editors that save via rename replace the inode
	if err := w.Add(filepath.Dir(pw.path)); err != nil {
		w.Close()
		return nil, err
	}

	return pw, nil
}

func (w *Watcher) Start() {
	go w.watch()
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

// OnReload registers a handler called after each successful reload.
func (w *Watcher) OnReload(handler func(*Profile)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Get returns the most recently loaded profile.
func (w *Watcher) Get() *Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.profile
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("profile watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	p, err := Load(w.path)
	if err != nil {
		log.Errorf("profile reload failed, keeping previous: %v", err)
		return
	}

	w.mu.Lock()
	w.profile = p
	handlers := make([]func(*Profile), len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	log.Infof("profile reloaded from %s (%d codes)", w.path, len(p.Codes))

	for _, handler := range handlers {
		handler(p)
	}
}
