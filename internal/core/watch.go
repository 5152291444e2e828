package core

import (
	"github.com/fsnotify/fsnotify"

	"github.com/untoldecay/mvcs/internal/types"
)

// Watcher recomputes Status whenever the working tree changes, for
// long-running CLI `watch` sessions (SPEC_FULL §6.F supplemental).
type Watcher struct {
	fsw     *fsnotify.Watcher
	project *Project
	Changes chan *Status
	Errors  chan error
}

// Watch starts watching the project's working directory and emits a fresh
// Status on Changes after every filesystem event, debounced only by
// fsnotify's own event coalescing. Call Close to stop.
func (p *Project) Watch() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, types.Wrap(types.KindIO, err, "create filesystem watcher")
	}
	if err := fsw.Add(p.workingDir); err != nil {
		fsw.Close()
		return nil, types.Wrap(types.KindIO, err, "watch %s", p.workingDir)
	}

	w := &Watcher{
		fsw:     fsw,
		project: p,
		Changes: make(chan *Status),
		Errors:  make(chan error),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Name == w.project.projectFile() {
				continue
			}
			status, err := w.project.Status(nil)
			if err != nil {
				w.Errors <- err
				continue
			}
			w.Changes <- status
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		}
	}
}

// Close stops the watcher and releases its underlying resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
