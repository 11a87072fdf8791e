// Package renderer renders package records as a pinned requirements file.
package renderer

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// TopLevelHeader labels packages named by the input.
	TopLevelHeader = "# Top level requirements"

	// TransitiveHeader labels packages pulled in by other packages.
	TransitiveHeader = "# Dependencies of top level requirements"
)

type line struct {
	key  string
	text string
}

// Render returns the lines of a pinned requirements file.
//
// Top-level records come first under TopLevelHeader. Transitive records follow
// under TransitiveHeader, which is omitted when there are none. Both groups are
// sorted case-insensitively by name.
func Render(records []domain.PackageRecord, hashes bool) []string {
	var topLevel, transitive []line
	for _, rec := range records {
		l := line{key: rec.Key(), text: format(rec, hashes)}
		if rec.Requested() {
			topLevel = append(topLevel, l)
		} else {
			transitive = append(transitive, l)
		}
	}

	sortLines(topLevel)

	out := make([]string, 0, len(records)+2)
	out = append(out, TopLevelHeader)
	out = appendText(out, topLevel)

	if len(transitive) > 0 {
		sortLines(transitive)
		out = append(out, TransitiveHeader)
		out = appendText(out, transitive)
	}

	return out
}

func format(rec domain.PackageRecord, hashes bool) string {
	pin := rec.Pin()
	if hashes {
		pin += " \\\n    --hash=" + rec.ContentHash()
	}
	return pin
}

// sortLines orders by lower-cased name; the original text breaks ties so that
// output does not depend on input order.
func sortLines(lines []line) {
	slices.SortFunc(lines, func(a, b line) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.text, b.text)
	})
}

func appendText(out []string, lines []line) []string {
	for _, l := range lines {
		out = append(out, l.text)
	}
	return out
}

// Write writes each line followed by a newline.
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
	}
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

// WriteFile writes the lines to path, replacing any existing file atomically.
func WriteFile(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := Write(tmp, lines); err != nil {
		_ = tmp.Close()
		return zerr.With(err, "output", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", path)
	}
	return nil
}

// Content joins the lines exactly as Write would emit them.
func Content(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
