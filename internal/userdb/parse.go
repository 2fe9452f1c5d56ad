package userdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parsedFile holds the entries of a database in file order.
type parsedFile[T any] struct {
	list []*T
}

func (pf *parsedFile[T]) entries() []*T {
	return pf.list
}

func (pf *parsedFile[T]) add(e *T) {
	pf.list = append(pf.list, e)
}

func parseColonLine(line string) []string {
	// Keep trailing empty fields.
	return strings.Split(line, ":")
}

// skipLine reports lines that never hold a lookup-able entry.
func skipLine(line string) bool {
	trim := strings.TrimSpace(line)
	return trim == "" || strings.HasPrefix(trim, "#") ||
		strings.HasPrefix(trim, "+") || strings.HasPrefix(trim, "-")
}

func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	s.Buffer(buf, 1024*1024)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func atoid(field, ctx string) (uint32, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q in %s: %w", field, ctx, err)
	}
	return uint32(n), nil
}

func atoi64(field, ctx string) (int64, error) {
	if field == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int %q in %s: %w", field, ctx, err)
	}
	return n, nil
}
