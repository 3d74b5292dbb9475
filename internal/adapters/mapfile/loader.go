// Package mapfile reads street segments from the plain-text map format:
//
//	<street name>
//	<segment count>
//	<lat1> <lon1> <lat2> <lon2>   (repeated count times)
//
// Blocks repeat until end of file. A blank count line ends the data.
package mapfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"delivery-route-planner/internal/domain"
)

// Parse reads every street in r and returns each segment followed by its reverse.
func Parse(r io.Reader) ([]domain.StreetSegment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	var out []domain.StreetSegment
	for {
		name, ok := next()
		if !ok {
			break
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		countText, ok := next()
		if !ok || strings.TrimSpace(countText) == "" {
			break
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("parse map: line %d: invalid segment count %q for %q", line, countText, name)
		}

		for i := 0; i < count; i++ {
			text, ok := next()
			if !ok {
				return nil, fmt.Errorf("parse map: %q: expected %d segments, got %d", name, count, i)
			}

			seg, err := parseSegment(text, name)
			if err != nil {
				return nil, fmt.Errorf("parse map: line %d: %w", line, err)
			}
			out = append(out, seg, seg.Reverse())
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse map: read: %w", err)
	}

	return out, nil
}

func parseSegment(text, name string) (domain.StreetSegment, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return domain.StreetSegment{}, fmt.Errorf("expected 4 coordinates, got %d", len(fields))
	}

	start, err := domain.NewGeoCoord(fields[0], fields[1])
	if err != nil {
		return domain.StreetSegment{}, err
	}
	end, err := domain.NewGeoCoord(fields[2], fields[3])
	if err != nil {
		return domain.StreetSegment{}, err
	}

	return domain.StreetSegment{Start: start, End: end, Name: name}, nil
}

// Loader implements ports.SegmentLoader over a map file on disk.
type Loader struct {
	Path string
}

func NewLoader(path string) *Loader { return &Loader{Path: path} }

func (l *Loader) LoadSegments(ctx context.Context) ([]domain.StreetSegment, error) {
	if strings.TrimSpace(l.Path) == "" {
		return nil, errors.New("load map file: path must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("load map file: open %q: %w", l.Path, err)
	}
	defer f.Close()

	segs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load map file %q: %w", l.Path, err)
	}
	return segs, nil
}
