package tailorcss

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CollectOptions configures how paths are turned into markup
type CollectOptions struct {
	Extensions       []string    // File extensions to read, case-insensitive (default: [".html"])
	RespectGitignore bool        // Skip relative paths matched by ./.gitignore
	Logger           *zap.Logger // Receives skipped-path warnings (default: no logging)
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Regular files found under the given paths
	FilesRead       int // Files whose content was collected
	FilesSkipped    int // Files skipped by extension or gitignore
}

// Collection is the concatenated markup of every collected file
type Collection struct {
	Markup string
	Stats  ScanStats
	// Err combines the non-fatal errors for paths that could not be read.
	// It is nil when every path was usable.
	Err error
}

// Collector reads HTML from files, directories and glob patterns
type Collector struct {
	extensions       []string
	respectGitignore bool
	log              *zap.Logger

	gitIgnore     *ignore.GitIgnore
	gitIgnoreOnce sync.Once
}

// NewCollector creates a collector
func NewCollector(opts CollectOptions) *Collector {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".html"}
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}

	return &Collector{
		extensions:       normalized,
		respectGitignore: opts.RespectGitignore,
		log:              log.Named("collector"),
	}
}

// Collect concatenates the content of every matching file under paths, in
// the order the paths are given. Directories are walked in lexical order.
// Missing or unreadable paths are logged and recorded in Collection.Err.
func (c *Collector) Collect(paths []string) (*Collection, error) {
	collection := &Collection{}
	var files []string

	for _, location := range paths {
		if strings.TrimSpace(location) == "" {
			return nil, ErrEmptyLocation
		}

		for _, target := range c.expand(location, collection) {
			files = c.collectPath(target, files, collection)
		}
	}

	collection.Markup = c.readFiles(files, collection)
	c.log.Debug("Collected markup",
		zap.Int("discovered", collection.Stats.FilesDiscovered),
		zap.Int("read", collection.Stats.FilesRead),
		zap.Int("skipped", collection.Stats.FilesSkipped))

	return collection, nil
}

// expand resolves glob patterns; plain paths are returned unchanged
func (c *Collector) expand(location string, collection *Collection) []string {
	if !isGlobPattern(location) {
		return []string{location}
	}

	matches, err := doublestar.FilepathGlob(location)
	if err != nil {
		c.skip(collection, location, fmt.Errorf("glob pattern %q: %w", location, err))
		return nil
	}
	if len(matches) == 0 {
		c.log.Warn("Glob pattern matched nothing", zap.String("pattern", location))
	}
	return matches
}

// collectPath appends the wanted files at location, walking directories
func (c *Collector) collectPath(location string, files []string, collection *Collection) []string {
	info, err := os.Lstat(location)
	if err != nil {
		c.skip(collection, location, err)
		return files
	}

	if !info.IsDir() {
		return c.collectFile(location, files, collection)
	}

	err = filepath.WalkDir(location, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.skip(collection, path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		files = c.collectFile(path, files, collection)
		return nil
	})
	if err != nil {
		c.skip(collection, location, err)
	}
	return files
}

// collectFile appends path when it has a wanted extension
func (c *Collector) collectFile(path string, files []string, collection *Collection) []string {
	collection.Stats.FilesDiscovered++

	if !c.wantExtension(path) || c.ignored(path) {
		collection.Stats.FilesSkipped++
		return files
	}
	return append(files, path)
}

// readFiles reads files concurrently and concatenates them in order
func (c *Collector) readFiles(files []string, collection *Collection) string {
	contents := make([][]byte, len(files))
	errs := make([]error, len(files))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		eg.Go(func() error {
			// #nosec G304 - paths come from the caller
			contents[i], errs[i] = os.ReadFile(path)
			return nil
		})
	}
	_ = eg.Wait()

	var sb strings.Builder
	for i, path := range files {
		if errs[i] != nil {
			c.skip(collection, path, errs[i])
			continue
		}
		collection.Stats.FilesRead++
		sb.Write(contents[i])
	}
	return sb.String()
}

func (c *Collector) wantExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// ignored checks relative paths against ./.gitignore when enabled
func (c *Collector) ignored(path string) bool {
	if !c.respectGitignore || filepath.IsAbs(path) {
		return false
	}
	gi := c.loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// loadGitIgnore loads ./.gitignore once. A missing file disables the check.
func (c *Collector) loadGitIgnore() *ignore.GitIgnore {
	c.gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		c.gitIgnore = gi
	})
	return c.gitIgnore
}

func (c *Collector) skip(collection *Collection, path string, err error) {
	c.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
	collection.Err = multierr.Append(collection.Err, err)
}

func isGlobPattern(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
