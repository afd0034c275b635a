package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// tuningSettle is how long a tuning file must stay quiet after an edit before
// it is reloaded. Editors often write a file in several steps.
const tuningSettle = 100 * time.Millisecond

// Reload is the result of re-reading the watched tuning file. Err is set when
// the file could not be loaded or the watcher itself failed; Motion is then zero.
type Reload struct {
	Motion MotionConfig
	Err    error
}

// TuningWatcher reloads one motion tuning file each time it settles after an edit.
type TuningWatcher struct {
	path    string
	fs      *fsnotify.Watcher
	reloads chan Reload
	done    chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. The parent directory is watched rather than
// the file, so saves that replace the file are still seen.
func WatchTuning(path string) (*TuningWatcher, error) {
	path = filepath.Clean(path)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}

	tw := &TuningWatcher{
		path:    path,
		fs:      fw,
		reloads: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Path() string { return tw.path }

// Reloads delivers one value per settled edit. It is closed once the watcher stops.
func (tw *TuningWatcher) Reloads() <-chan Reload { return tw.reloads }

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.done)
		err = tw.fs.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.reloads)

	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-tw.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(event.Name) != tw.path {
				continue
			}
			settled = time.After(tuningSettle)
		case <-settled:
			settled = nil
			m, err := LoadMotionFile(tw.path)
			if !tw.send(Reload{Motion: m, Err: err}) {
				return
			}
		case err, ok := <-tw.fs.Errors:
			if !ok {
				return
			}
			if !tw.send(Reload{Err: fmt.Errorf("watch tuning %s: %w", tw.path, err)}) {
				return
			}
		case <-tw.done:
			return
		}
	}
}

func (tw *TuningWatcher) send(r Reload) bool {
	select {
	case tw.reloads <- r:
		return true
	case <-tw.done:
		return false
	}
}
