package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"time"

	"pasnav/filesys"
	"pasnav/model"
	"pasnav/report"

	"github.com/ComedicChimera/olive"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the watcher waits after the last relevant file
// event before reloading, batching editor save bursts into one reload.
const reloadDelay = 250 * time.Millisecond

// execWatchCommand loads the project and reloads it whenever a source
// file under the root changes.  Every reload builds a complete fresh
// project and publishes it through an atomic pointer, so a reader never
// observes a half-built model.
func execWatchCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()

	d := NewDriver(rootPath)

	var current atomic.Pointer[model.Project]
	current.Store(d.Load())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		report.ReportFatal("error creating watcher: %s", err.Error())
	}
	defer watcher.Close()

	watchTree(watcher, d.rootAbsPath)

	report.DisplayInfoMessage("watch", "watching for changes; press ctrl-c to stop")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}

			if relevantEvent(d, ev) {
				pending = time.After(reloadDelay)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return
			}

			report.ReportStdError(d.rootAbsPath, werr)
		case <-pending:
			pending = nil

			current.Store(d.Load())
			watchTree(watcher, d.rootAbsPath)

			proj := current.Load()
			report.DisplayInfoMessage("watch", fmt.Sprintf(
				"reloaded: %d files, %d symbols, %d diagnostics",
				proj.FileCount(), proj.SymCount(), len(proj.Diagnostics),
			))
		case <-interrupt:
			return
		}
	}
}

// relevantEvent reports whether a filesystem event can change the model:
// a touched source file, the project config file, or a created directory
// that may bring sources with it.
func relevantEvent(d *Driver, ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) == filesys.ConfigFileName {
		return true
	}

	cfg := d.fs.Config()
	if cfg.SourceExt(filepath.Ext(ev.Name)) {
		return true
	}

	if ev.Has(fsnotify.Create) {
		if finfo, err := os.Stat(ev.Name); err == nil && finfo.IsDir() {
			return true
		}
	}

	return false
}

// watchTree registers the root and every directory below it.  Adding a
// directory twice is harmless, so the tree is simply re-walked after each
// reload to pick up directories created since the last walk.
func watchTree(watcher *fsnotify.Watcher, rootPath string) {
	filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			watcher.Add(path)
		}

		return nil
	})
}
