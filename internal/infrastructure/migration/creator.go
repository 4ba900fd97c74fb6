package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Pair is a freshly scaffolded up/down migration file pair.
type Pair struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// Create scaffolds an empty up/down migration pair under dir. The
// version prefix is the current timestamp so lexical order matches
// creation order, matching the files already in migrations/.
func Create(dir, name, description string) (*Pair, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	slug := slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q contains no usable characters", name)
	}

	now := time.Now()
	p := &Pair{
		Version: now.Format("20060102150405"),
		Name:    slug,
	}
	base := filepath.Join(dir, p.Version+"_"+slug)
	p.UpPath = base + ".up.sql"
	p.DownPath = base + ".down.sql"

	created := now.Format(time.RFC3339)
	up := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n-- Description: %s\n\n-- Write your UP migration SQL here\n\n",
		slug, created, description)
	down := fmt.Sprintf("-- Migration: %s (Rollback)\n-- Created: %s\n-- Description: Rollback for %s\n\n-- Write your DOWN migration SQL here\n\n",
		slug, created, description)

	if err := os.WriteFile(p.UpPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(p.DownPath, []byte(down), 0o644); err != nil {
		_ = os.Remove(p.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}

	return p, nil
}

// slugify lowercases a migration name and collapses separators into
// single underscores, dropping anything that is not [a-z0-9_].
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			s := b.String()
			if s != "" && !strings.HasSuffix(s, "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// List returns the base names of every migration pair in dir, sorted
// by version. A missing directory is treated as empty.
func List(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".up.sql"))
	}
	sort.Strings(names)
	return names, nil
}
