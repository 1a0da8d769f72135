package cliconfig

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// defaultDebounceDelay is how long the watcher waits after a file change
// before reloading, so editors that write in several steps trigger one reload.
const defaultDebounceDelay = 100 * time.Millisecond

// Watcher monitors the configuration file and delivers a re-validated Config
// whenever it changes on disk. Flag precedence from startup is preserved:
// values set explicitly on the command line are never overridden by a reload.
type Watcher struct {
	path     string
	base     Config
	changed  map[string]bool
	onChange func(Config)
	log      zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer

	fsw *fsnotify.Watcher
	wg  sync.WaitGroup
}

// NewWatcher starts watching path. base is the configuration as resolved at
// startup before the file was applied; onChange receives the merged result
// after each successful reload. Close must be called to release the watcher.
func NewWatcher(path string, base Config, changed map[string]bool, onChange func(Config), log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors and config management tools
	// often replace the file, which drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		base:     base,
		changed:  changed,
		onChange: onChange,
		log:      log,
		fsw:      fsw,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("Config watcher error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(defaultDebounceDelay, w.reload)
}

func (w *Watcher) reload() {
	fc, err := LoadFileConfig(w.path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("Config reload failed")
		return
	}

	cfg := w.base
	if err := ApplyFileConfig(&cfg, fc, w.changed); err != nil {
		w.log.Warn().Err(err).Msg("Config reload rejected: invalid value")
		return
	}
	if err := cfg.Validate(); err != nil {
		w.log.Warn().Err(err).Msg("Config reload rejected: validation failed")
		return
	}

	w.log.Info().Str("path", w.path).Msg("Configuration reloaded")
	w.onChange(cfg)
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
