package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with coordinate columns and returns integer points.
// Column detection: x|col|lon|longitude and y|row|lat|latitude
// (case-insensitive). Fractional values are truncated to the lattice.
func LoadCSV(path string) (points [][2]int, bbox BBox, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, BBox{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, BBox{}, err
	}
	if len(recs) == 0 {
		return nil, BBox{}, errors.New("empty csv")
	}
	header := recs[0]
	idxX, idxY := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "col", "lon", "lng", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "row", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, BBox{}, errors.New("csv: coordinate columns not found")
	}
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, ok1 := parseCoord(row[idxX])
		y, ok2 := parseCoord(row[idxY])
		if !ok1 || !ok2 {
			continue
		}
		p := [2]int{x, y}
		bbox.extend(p, len(points) == 0)
		points = append(points, p)
	}
	if len(points) == 0 {
		return nil, BBox{}, errors.New("csv: no valid points parsed")
	}
	return points, bbox, nil
}

// parseCoord accepts integers directly and truncates floats.
func parseCoord(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v), true
	}
	return 0, false
}
