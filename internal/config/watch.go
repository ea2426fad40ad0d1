package config

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and calls onChange
// with the freshly loaded config. Rapid write bursts from editors are
// debounced into a single reload. It returns a close function.
// Diagnostics go to logger; while the TUI owns the terminal the default
// logger would scribble over the alternate screen, so a nil logger
// discards them.
func Watch(path string, logger *log.Logger, onChange func(*Config)) (func(), error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if path == "" {
		path = DefaultPath()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch the directory: editors replace the file on save, which drops
	// a watch registered on the file itself.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching config dir: %w", err)
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		reload := func() {
			cfg, err := Load(absPath)
			if err != nil {
				logger.Printf("reloading config: %v", err)
				return
			}
			if onChange != nil {
				onChange(cfg)
			}
		}
		for {
			select {
			case <-done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(absPath) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(500*time.Millisecond, reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Printf("config watcher: %v", err)
			}
		}
	}()

	return func() {
		close(done)
		w.Close()
	}, nil
}
