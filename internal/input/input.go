// Package input reads puzzle input files.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoInput indicates a file without any non-blank line.
var ErrNoInput = errors.New("input: no non-empty line")

// ReadLines returns the lines of the file at path with trailing "\r" removed.
// If skipEmpty is set, blank lines are dropped.
func ReadLines(path string, skipEmpty bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if skipEmpty && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}

	return lines, nil
}

// FirstLine returns the first non-blank line of the file at path, trimmed.
func FirstLine(path string) (string, error) {
	lines, err := ReadLines(path, true)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoInput, path)
	}

	return strings.TrimSpace(lines[0]), nil
}

// ReadAll returns the whole file at path as a string.
func ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}

	return string(data), nil
}
