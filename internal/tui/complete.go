package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// completePath extends input toward the entries of its directory that share
// its last element. At most maxEntries directory entries are read. It returns
// the extended input and the matching candidates.
func completePath(input string, maxEntries int, showHidden bool) (string, []string, error) {
	dir, prefix := filepath.Split(input)

	readDir := dir
	if readDir == "" {
		readDir = "."
	} else if strings.HasPrefix(readDir, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			readDir = filepath.Join(home, readDir[2:])
		}
	}

	f, err := os.Open(readDir)
	if err != nil {
		return input, nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(maxEntries)
	if err != nil && !errors.Is(err, io.EOF) {
		return input, nil, err
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !showHidden && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		matches = append(matches, name)
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return input, nil, nil
	case 1:
		return dir + matches[0], matches, nil
	}
	return dir + commonPrefix(matches), matches, nil
}

func commonPrefix(items []string) string {
	p := items[0]
	for _, s := range items[1:] {
		for !strings.HasPrefix(s, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
