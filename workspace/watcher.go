package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a workspace whenever a yuck file below the root
// directory changes.
type Watcher struct {
	workspace *Workspace
	cwd       string
	debounce  time.Duration
	onReload  func()

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// rootDir is watched recursively; extra holds directories of loaded
	// files that live outside it.
	rootDir string
	extra   map[string]bool
}

// NewWatcher creates a watcher for w. cwd is the directory loads start
// from; onReload, if set, runs after every completed reload.
func NewWatcher(w *Workspace, cwd string, onReload func()) *Watcher {
	return &Watcher{
		workspace: w,
		cwd:       cwd,
		debounce:  defaultDebounce,
		onReload:  onReload,
		stopCh:    make(chan struct{}),
	}
}

// Start begins watching the directory of the current root file, plus
// the directory of every loaded file outside it.
// It returns ErrNoRoot if the workspace has not found one.
func (w *Watcher) Start() error {
	root := w.workspace.Root()
	if root == "" {
		return ErrNoRoot
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.rootDir = filepath.Dir(root)
	w.extra = make(map[string]bool)
	if err := addWatchRecursive(fsw, w.rootDir); err != nil {
		fsw.Close()
		return err
	}
	w.watchLoadedDirs(fsw)

	w.done = make(chan struct{})
	go w.run(fsw)
	return nil
}

// Stop ends the watch and waits for the watcher goroutine to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	if w.done != nil {
		<-w.done
	}
}

func (w *Watcher) run(fsw *fsnotify.Watcher) {
	defer close(w.done)
	defer fsw.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	pending := false

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchRecursive(fsw, event.Name)
				}
			}
			if !isYuckFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true
		case <-timer.C:
			pending = false
			w.reload()
			w.watchLoadedDirs(fsw)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Warningf("watch: %s", err)
		}
	}
}

func (w *Watcher) reload() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-w.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := w.workspace.Load(ctx, w.cwd); err != nil {
		log.Warningf("reload: %s", err)
		return
	}
	if w.onReload != nil {
		w.onReload()
	}
}

// watchLoadedDirs adds the directory of each loaded file that is not
// already covered by the recursive watch on the root directory.
func (w *Watcher) watchLoadedDirs(fsw *fsnotify.Watcher) {
	for _, file := range w.workspace.Files() {
		dir := filepath.Dir(file)
		if w.extra[dir] || isWithin(w.rootDir, dir) {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			log.Warningf("watch %s: %s", dir, err)
			continue
		}
		w.extra[dir] = true
	}
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func addWatchRecursive(fsw *fsnotify.Watcher, root string) error {
	root = filepath.Clean(root)
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

func isYuckFile(path string) bool {
	return filepath.Ext(path) == ".yuck"
}
