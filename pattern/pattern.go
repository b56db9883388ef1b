// Package pattern formats and matches tile coordinates in path or URL
// templates with {x}, {y} and {z} placeholders, e.g. "tiles/{z}/{x}/{y}.png".
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eak1mov/go-tilegeom/tile"
)

var ErrInvalidPattern = errors.New("tilegeom: invalid tile pattern")

func validate(pattern string) error {
	for _, p := range []string{"{x}", "{y}", "{z}"} {
		if !strings.Contains(pattern, p) {
			return fmt.Errorf("%w: placeholder %v not found", ErrInvalidPattern, p)
		}
	}
	return nil
}

// Format substitutes the tile's coordinates into the pattern.
// The pattern must contain all three placeholders.
func Format(pattern string, tileID tile.ID) (string, error) {
	if err := validate(pattern); err != nil {
		return "", err
	}

	result := pattern
	result = strings.ReplaceAll(result, "{x}", strconv.FormatUint(uint64(tileID.X), 10))
	result = strings.ReplaceAll(result, "{y}", strconv.FormatUint(uint64(tileID.Y), 10))
	result = strings.ReplaceAll(result, "{z}", strconv.FormatUint(uint64(tileID.Z), 10))
	return result, nil
}

// Matcher extracts tile coordinates from strings produced by a pattern.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles a matcher for the given pattern. Text around the
// placeholders is matched literally.
func NewMatcher(pattern string) (*Matcher, error) {
	if err := validate(pattern); err != nil {
		return nil, err
	}

	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\{x\}`, `(?P<x>\d+)`)
	quoted = strings.ReplaceAll(quoted, `\{y\}`, `(?P<y>\d+)`)
	quoted = strings.ReplaceAll(quoted, `\{z\}`, `(?P<z>\d+)`)

	re, err := regexp.Compile("^" + quoted + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &Matcher{re}, nil
}

// Match extracts the tile coordinates from s. The second return value is
// false if s does not match the pattern.
func (m *Matcher) Match(s string) (tile.ID, bool) {
	matches := m.re.FindStringSubmatch(s)
	if matches == nil {
		return tile.ID{}, false
	}

	x, _ := strconv.ParseUint(matches[m.re.SubexpIndex("x")], 10, 32)
	y, _ := strconv.ParseUint(matches[m.re.SubexpIndex("y")], 10, 32)
	z, _ := strconv.ParseUint(matches[m.re.SubexpIndex("z")], 10, 32)

	return tile.ID{X: uint32(x), Y: uint32(y), Z: uint32(z)}, true
}
