package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"sitenav/internal/config"
	models "sitenav/internal/domain/models/navigation"
	"sitenav/internal/navigation"
)

const (
	indexFile = "index.md"
	rootID    = "home"

	defaultConcurrency = 8
)

// Frontmatter keys mapped onto item fields; everything else goes to Metadata
var itemKeys = map[string]bool{
	"id": true, "title": true, "path": true, "type": true,
	"order": true, "visible": true, "parent": true, "draft": true,
}

// Loader reads navigation items from a directory of markdown files
type Loader struct {
	dir         string
	concurrency int
	logger      *slog.Logger
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{
		dir:         dir,
		concurrency: defaultConcurrency,
		logger:      logger,
	}
}

// Dir returns the content root
func (l *Loader) Dir() string {
	return l.dir
}

// sourceFile is one markdown file, identified by its slash path relative to
// the content root (e.g. "blog/post.md")
type sourceFile struct {
	rel  string
	meta map[string]any
	skip bool
}

// Load walks the content directory and maps every markdown file to a
// navigation item. Items are returned in relative-path order. Items are
// decoded but not validated, so malformed frontmatter still reaches the
// validator.
func (l *Loader) Load(ctx context.Context) ([]models.Item, error) {
	rels, err := l.listFiles()
	if err != nil {
		return nil, err
	}

	files := make([]sourceFile, len(rels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, rel := range rels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := l.readFile(rel)
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indexIDs := make(map[string]string)
	for _, file := range files {
		if !file.skip && path.Base(file.rel) == indexFile {
			indexIDs[path.Dir(file.rel)] = file.id()
		}
	}

	items := make([]models.Item, 0, len(files))
	drafts := 0
	for _, file := range files {
		if file.skip {
			drafts++
			continue
		}
		item, ok := navigation.DecodeItem(descriptor(file, indexIDs))
		if !ok {
			continue
		}
		items = append(items, item)
	}

	l.logger.Debug("content loaded",
		"dir", l.dir,
		"file_count", len(rels),
		"item_count", len(items),
		"draft_count", drafts,
	)

	return items, nil
}

func (l *Loader) listFiles() ([]string, error) {
	var rels []string
	err := filepath.WalkDir(l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if p != l.dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(name) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(l.dir, p)
		if err != nil {
			return err
		}
		rels = append(rels, filepath.ToSlash(rel))
		if len(rels) > config.MaxContentFiles {
			return fmt.Errorf("content directory holds more than %d markdown files", config.MaxContentFiles)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan content directory %s: %w", l.dir, err)
	}

	sort.Strings(rels)
	return rels, nil
}

func (l *Loader) readFile(rel string) (sourceFile, error) {
	raw, err := os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(rel)))
	if err != nil {
		return sourceFile{}, fmt.Errorf("read %s: %w", rel, err)
	}

	meta, _, err := ParseFrontmatter(raw)
	if errors.Is(err, ErrNoFrontmatter) {
		meta = map[string]any{}
	} else if err != nil {
		return sourceFile{}, fmt.Errorf("%s: %w", rel, err)
	}

	draft, _ := meta["draft"].(bool)
	return sourceFile{rel: rel, meta: meta, skip: draft}, nil
}

// descriptor builds the untyped item descriptor for a file, deriving every
// field its frontmatter leaves out
func descriptor(file sourceFile, indexIDs map[string]string) map[string]any {
	d := map[string]any{
		"id":      derivedID(file.rel),
		"title":   derivedTitle(file.rel),
		"path":    derivedPath(file.rel),
		"type":    string(derivedType(file.rel)),
		"order":   0,
		"visible": true,
	}
	if parent := derivedParent(file.rel, indexIDs); parent != "" {
		d["parent"] = parent
	}

	metadata := map[string]any{"source": file.rel}
	for key, value := range file.meta {
		if itemKeys[key] {
			d[key] = value
			continue
		}
		metadata[key] = value
	}
	d["metadata"] = metadata
	return d
}

// id is the frontmatter id when set, the derived one otherwise
func (f sourceFile) id() string {
	if id, ok := f.meta["id"].(string); ok && id != "" {
		return id
	}
	return derivedID(f.rel)
}

func isIndex(rel string) bool {
	return path.Base(rel) == indexFile
}

// derivedID: "blog/post.md" → "blog/post", "blog/index.md" → "blog", "index.md" → "home"
func derivedID(rel string) string {
	if isIndex(rel) {
		dir := path.Dir(rel)
		if dir == "." {
			return rootID
		}
		return dir
	}
	return strings.TrimSuffix(rel, ".md")
}

func derivedPath(rel string) string {
	if isIndex(rel) {
		dir := path.Dir(rel)
		if dir == "." {
			return "/"
		}
		return "/" + dir
	}
	return "/" + strings.TrimSuffix(rel, ".md")
}

func derivedType(rel string) models.ItemType {
	switch {
	case rel == indexFile:
		return models.ItemTypePage
	case isIndex(rel):
		return models.ItemTypeCollection
	default:
		return models.ItemTypeContent
	}
}

// derivedParent returns the id of the nearest enclosing directory index.
// The root index is never a parent; top-level entries are roots.
func derivedParent(rel string, indexIDs map[string]string) string {
	dir := path.Dir(rel)
	if isIndex(rel) {
		dir = path.Dir(dir)
	}
	for dir != "." && dir != "/" {
		if id, ok := indexIDs[dir]; ok {
			return id
		}
		dir = path.Dir(dir)
	}
	return ""
}

// derivedTitle turns "my-first_post.md" into "My First Post"
func derivedTitle(rel string) string {
	name := path.Base(strings.TrimSuffix(rel, ".md"))
	if isIndex(rel) {
		name = path.Base(path.Dir(rel))
		if name == "." {
			return "Home"
		}
	}

	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
