package persist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrBadIndex = errors.New("malformed index file")

// WriteIndex writes the count of names followed by one "name\tindex" line each.
// Names are written in the order given; callers pass sorted lists.
func WriteIndex(path string, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(names))
	for i, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, i)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadIndex parses a file written by WriteIndex and checks the count header and
// the running index.
func ReadIndex(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: missing count line: %w", path, ErrBadIndex)
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("%s: count %q: %w", path, scanner.Text(), ErrBadIndex)
	}

	names := make([]string, 0, count)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, idx, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%s: line %q has no index: %w", path, line, ErrBadIndex)
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n != len(names) {
			return nil, fmt.Errorf("%s: line %q out of sequence: %w", path, line, ErrBadIndex)
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(names) != count {
		return nil, fmt.Errorf("%s: header says %d, found %d: %w", path, count, len(names), ErrBadIndex)
	}
	return names, nil
}
