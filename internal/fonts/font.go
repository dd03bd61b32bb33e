// Package fonts loads the display faces used by the terminal UI.
//
// A terminal cannot switch typefaces, so a font resource here is a
// small text file that remaps code-point ranges onto an alphabet that
// looks like the face (fullwidth forms for a pixel font, mathematical
// bold for a heavy grotesque). The format is line oriented:
//
//	name PressStart2P_400Regular
//	map U+0041..U+005A U+FF21
//	map U+0020 U+3000
//
// Text after '#' is a comment. Runes outside every range are left
// unchanged by Apply.
package fonts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedFont is wrapped by every parse failure.
var ErrMalformedFont = errors.New("malformed font resource")

type runeRange struct {
	lo, hi rune
	target rune
}

// Font is a parsed font resource.
type Font struct {
	Name   string
	ranges []runeRange
}

// Parse reads a font resource.
func Parse(r io.Reader) (*Font, error) {
	f := &Font{}
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "name":
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: name takes one argument", ErrMalformedFont, lineNo)
			}
			f.Name = fields[1]

		case "map":
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: map takes a source and a target", ErrMalformedFont, lineNo)
			}
			rr, err := parseMapping(fields[1], fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFont, lineNo, err)
			}
			f.ranges = append(f.ranges, rr)

		default:
			return nil, fmt.Errorf("%w: line %d: unknown directive %q", ErrMalformedFont, lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading font resource: %w", err)
	}

	if f.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedFont)
	}
	if len(f.ranges) == 0 {
		return nil, fmt.Errorf("%w: %s maps no code points", ErrMalformedFont, f.Name)
	}
	return f, nil
}

func parseMapping(src, dst string) (runeRange, error) {
	lo, hi := src, src
	if a, b, ok := strings.Cut(src, ".."); ok {
		lo, hi = a, b
	}

	var rr runeRange
	var err error
	if rr.lo, err = parseCodePoint(lo); err != nil {
		return rr, err
	}
	if rr.hi, err = parseCodePoint(hi); err != nil {
		return rr, err
	}
	if rr.target, err = parseCodePoint(dst); err != nil {
		return rr, err
	}
	if rr.hi < rr.lo {
		return rr, fmt.Errorf("range %s is reversed", src)
	}
	return rr, nil
}

func parseCodePoint(s string) (rune, error) {
	hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+")
	if !ok {
		return 0, fmt.Errorf("code point %q must use U+XXXX form", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(n), nil
}

// Apply renders s in this face.
func (f *Font) Apply(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(f.mapRune(r))
	}
	return b.String()
}

func (f *Font) mapRune(r rune) rune {
	for _, rr := range f.ranges {
		if r >= rr.lo && r <= rr.hi {
			return rr.target + (r - rr.lo)
		}
	}
	return r
}
