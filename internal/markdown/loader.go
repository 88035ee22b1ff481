package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LoaderConfig configures how collection item files are discovered within a
// base directory.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader discovers Markdown item files on a filesystem.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadSources walks the filesystem and returns the raw bytes of every
// matching file, ordered by path so imports are deterministic.
func (l *Loader) LoadSources(ctx context.Context) ([][]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var paths []string
	walkErr := fs.WalkDir(l.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !l.recursive && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		matched, matchErr := path.Match(l.pattern, path.Base(p))
		if matchErr != nil {
			return fmt.Errorf("markdown loader pattern %q: %w", l.pattern, matchErr)
		}
		if matched {
			paths = append(paths, p)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("markdown loader walk: %w", walkErr)
	}
	sort.Strings(paths)

	sources := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(l.fs, p)
		if err != nil {
			return nil, fmt.Errorf("markdown loader read %s: %w", p, err)
		}
		sources = append(sources, data)
	}
	return sources, nil
}
