package geom

import (
	"encoding/json"
	"errors"
	"os"
)

// LoadGeoJSON extracts point coordinates from a GeoJSON file.
// Supports: Point, MultiPoint, Feature, FeatureCollection of Points and
// MultiPoints. Coordinates are truncated to the integer lattice.
func LoadGeoJSON(path string) (points [][2]int, bbox BBox, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, BBox{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, BBox{}, err
	}
	t, _ := raw["type"].(string)
	if t == "" {
		return nil, BBox{}, errors.New("invalid geojson: missing type")
	}

	add := func(p [2]int) {
		bbox.extend(p, len(points) == 0)
		points = append(points, p)
	}
	parsePoint := func(v any) (p [2]int, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return [2]int{int(x), int(y)}, true
			}
		}
		return [2]int{}, false
	}
	parseMulti := func(v any) {
		arr, ok := v.([]any)
		if !ok {
			return
		}
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				add(p)
			}
		}
	}
	walkGeom := func(g map[string]any) {
		switch gt, _ := g["type"].(string); gt {
		case "Point":
			if p, ok := parsePoint(g["coordinates"]); ok {
				add(p)
			}
		case "MultiPoint":
			parseMulti(g["coordinates"])
		}
	}

	switch t {
	case "Point", "MultiPoint":
		walkGeom(raw)
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	default:
		return nil, BBox{}, errors.New("unsupported geojson type: " + t)
	}

	if len(points) == 0 {
		return nil, BBox{}, errors.New("no points found in geojson")
	}
	return points, bbox, nil
}
