// Package workspace loads the user-defined widgets and variables of an
// eww configuration. A workspace starts at the root file (eww.yuck),
// found by walking up from a directory, and follows include directives
// from there.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/yuckls/yuck"
	"github.com/dhamidi/yuckls/yuck/builtin"
)

const DefaultRootMarker = "eww.yuck"

var ErrNoRoot = errors.New("no root file found")

var log = commonlog.GetLogger("yuckls.workspace")

type Options struct {
	// RootMarker is the file name searched for; defaults to eww.yuck.
	RootMarker string
	// MaxFiles caps the number of files parsed per load. Zero means no cap.
	MaxFiles int
	// LoadTimeout bounds a single load. Zero means no timeout.
	LoadTimeout time.Duration
	// Builtins are the types that take precedence over user-defined
	// widgets; defaults to the builtin catalog.
	Builtins yuck.Lookup
}

type Workspace struct {
	opts Options

	// loadMu serializes loads; mu guards the published tables.
	loadMu sync.Mutex
	mu     sync.RWMutex

	root      string
	files     []string
	types     []yuck.Type
	variables []yuck.Variable
	includes  map[string]bool
	catalog   *yuck.Catalog
	shadowed  []string
}

func New(opts Options) *Workspace {
	if opts.RootMarker == "" {
		opts.RootMarker = DefaultRootMarker
	}
	if opts.Builtins == nil {
		opts.Builtins = builtin.Catalog()
	}
	return &Workspace{opts: opts}
}

// FindRoot walks up from dir until it finds a file named marker and
// returns its path.
func FindRoot(dir, marker string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	dir = start
	for {
		candidate := filepath.Join(dir, marker)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s above %s: %w", marker, start, ErrNoRoot)
		}
		dir = parent
	}
}

// Load rebuilds the workspace from the root file found above cwd. All
// previous state is replaced once the new tables are complete. Missing
// roots, missing includes and unreadable files are logged and skipped;
// the only errors returned come from ctx or the load timeout, in which
// case the previous tables stay in place.
func (w *Workspace) Load(ctx context.Context, cwd string) error {
	w.loadMu.Lock()
	defer w.loadMu.Unlock()

	if w.opts.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.opts.LoadTimeout)
		defer cancel()
	}

	root, err := FindRoot(cwd, w.opts.RootMarker)
	if err != nil {
		log.Infof("no workspace: %s", err)
		w.publish(&snapshot{})
		return nil
	}
	log.Infof("loading workspace %s", root)

	s := &snapshot{root: root}
	includes := newIncludeSet()
	includes.Add(root)
	for {
		if err := ctx.Err(); err != nil {
			log.Warningf("workspace not ready: %s", err)
			return fmt.Errorf("load %s: %w", root, err)
		}
		if w.opts.MaxFiles > 0 && len(s.files) >= w.opts.MaxFiles {
			log.Warningf("stopping after %d files", len(s.files))
			break
		}
		path, ok := includes.Next()
		if !ok {
			break
		}
		decls, ok := parseFile(path)
		if !ok {
			continue
		}
		s.files = append(s.files, path)
		s.types = append(s.types, decls.Types...)
		s.variables = append(s.variables, decls.Variables...)
		for _, include := range decls.Includes {
			includes.Add(resolveInclude(root, include))
		}
	}
	s.includes = includes.Snapshot()
	w.publish(s)
	log.Infof("loaded %d files, %d widgets, %d variables", len(s.files), len(s.types), len(s.variables))
	return nil
}

func parseFile(path string) (yuck.Declarations, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("include %s does not exist", path)
		} else {
			log.Warningf("read %s: %s", path, err)
		}
		return yuck.Declarations{}, false
	}
	return yuck.Extract(string(content)), true
}

// resolveInclude resolves include relative to the root file's directory,
// regardless of which file contains the directive.
func resolveInclude(root, include string) string {
	rootDir := filepath.Dir(root)
	path := include
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, include)
	}
	path = filepath.Clean(path)
	if rel, err := filepath.Rel(rootDir, path); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		log.Warningf("include %q resolves outside %s", include, rootDir)
	}
	return path
}

type snapshot struct {
	root      string
	files     []string
	types     []yuck.Type
	variables []yuck.Variable
	includes  map[string]bool
}

func (w *Workspace) publish(s *snapshot) {
	catalog := yuck.NewCatalog(s.types...)

	var shadowed []string
	for _, t := range catalog.Types() {
		if _, ok := w.opts.Builtins.Lookup(t.Name); ok {
			log.Warningf("widget %q is shadowed by the builtin of the same name", t.Name)
			shadowed = append(shadowed, t.Name)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.root = s.root
	w.files = s.files
	w.types = s.types
	w.variables = s.variables
	w.includes = s.includes
	w.catalog = catalog
	w.shadowed = shadowed
}

// Shadowed returns the user-defined widget names hidden by builtins.
func (w *Workspace) Shadowed() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.shadowed
}

// Root returns the path of the root file, or "" if none was found.
func (w *Workspace) Root() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.root
}

// Files returns the files parsed by the last load, in parse order.
func (w *Workspace) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files
}

// Types returns the widgets defined across all files, in parse order.
// Duplicates are kept.
func (w *Workspace) Types() []yuck.Type {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.types
}

func (w *Workspace) Variables() []yuck.Variable {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.variables
}

// Includes returns every path seen by the last load and whether it was
// visited.
func (w *Workspace) Includes() map[string]bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.includes
}

// Lookup finds a user-defined widget by name. The first definition wins.
func (w *Workspace) Lookup(name string) (yuck.Type, bool) {
	w.mu.RLock()
	catalog := w.catalog
	w.mu.RUnlock()
	return catalog.Lookup(name)
}
