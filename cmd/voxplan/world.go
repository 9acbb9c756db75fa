package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseState parses a comma-separated component list ("1.5,-2,0.7854").
func parseState(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty state %q", s)
	}

	return out, nil
}

// loadRaster reads an occupancy raster: one row of digits per line, most
// negative y first, highest digit most occupied. Spaces inside a row and
// blank lines are ignored.
func loadRaster(path string) ([][]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raster [][]int
	sc := bufio.NewScanner(file)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for _, r := range text {
			if r == ' ' || r == '\t' {
				continue
			}
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("line %d: unexpected character %q", line, r)
			}
			row = append(row, int(r-'0'))
		}
		raster = append(raster, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(raster) == 0 {
		return nil, fmt.Errorf("%s: empty raster", path)
	}

	return raster, nil
}
