package linereader

import (
	"bufio"
	"fmt"
	"io"
)

// Each calls fn for every line read from r. Line endings ("\n" or "\r\n")
// are stripped. Stops at the first error returned by fn.
func Each(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, MaxLineSize)

	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan lines: %w", err)
	}
	return nil
}

// Lines reads all lines from r.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	err := Each(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
