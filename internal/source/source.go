package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yomu-dev/yomu/internal/textutil"
)

// ErrNoInput marks the "nothing to page" condition: no file argument and an
// interactive stdin. Callers print usage and exit nonzero without any
// further error text.
var ErrNoInput = errors.New("no input file")

// Hook for tests.
var isTerminal = term.IsTerminal

// Document is the fully loaded, UTF-8, tab-expanded text the pager shows.
type Document struct {
	// Name labels the document on the status bar.
	Name string
	Text string
}

// Load reads the document from path, or from stdin when path is empty and
// stdin is not an interactive terminal. The content is normalized before
// layout ever sees it: BOM/UTF-16 transcoded to UTF-8, CRLF folded to LF,
// tabs expanded to tabWidth columns.
func Load(path string, stdin *os.File, tabWidth int) (Document, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Document{}, fmt.Errorf("%s: No such file or directory", path)
			}
			return Document{}, fmt.Errorf("%s: %w", path, err)
		}
		return Document{
			Name: filepath.Base(path),
			Text: normalize(raw, tabWidth),
		}, nil
	}

	if isTerminal(int(stdin.Fd())) {
		return Document{}, ErrNoInput
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return Document{}, fmt.Errorf("reading standard input: %w", err)
	}
	return Document{
		Name: "(stdin)",
		Text: normalize(raw, tabWidth),
	}, nil
}

func normalize(raw []byte, tabWidth int) string {
	text := normalizeUnicode(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.ContainsRune(text, '\t') {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = textutil.ExpandTabs(line, tabWidth)
		}
		text = strings.Join(lines, "\n")
	}
	return text
}
