package geom

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// ParseText parses plain text point data: one point per line, coordinates
// separated by whitespace or a comma. Blank lines and #-comments are skipped.
// This is also the paste-mode format.
func ParseText(s string) (points [][2]int, bbox BBox, err error) {
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ReplaceAll(line, ",", " ")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		x, ok1 := parseCoord(fields[0])
		y, ok2 := parseCoord(fields[1])
		if !ok1 || !ok2 {
			continue
		}
		p := [2]int{x, y}
		bbox.extend(p, len(points) == 0)
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, BBox{}, err
	}
	if len(points) == 0 {
		return nil, BBox{}, errors.New("text: no coordinates parsed")
	}
	return points, bbox, nil
}

// LoadText reads a plain text point file; see ParseText for the format.
func LoadText(path string) (points [][2]int, bbox BBox, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, BBox{}, err
	}
	return ParseText(string(data))
}
