package level

// mapJSON is the subset of a Tiled orthogonal map export that the game reads.
type mapJSON struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	TileWidth  int         `json:"tilewidth"`
	TileHeight int         `json:"tileheight"`
	Layers     []layerJSON `json:"layers"`
}

// layerJSON covers tile layers, object groups and group layers in one shape;
// Type tells which fields are meaningful.
type layerJSON struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Data    []int        `json:"data,omitempty"`
	Objects []objectJSON `json:"objects,omitempty"`
	Layers  []layerJSON  `json:"layers,omitempty"`
}

type objectJSON struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Polyline []pointJSON `json:"polyline,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const (
	layerTypeTiles   = "tilelayer"
	layerTypeObjects = "objectgroup"
	layerTypeGroup   = "group"
)

// findLayer searches layers depth-first, descending into group layers.
func findLayer(layers []layerJSON, layerType, name string) (*layerJSON, bool) {
	for i := range layers {
		l := &layers[i]
		if l.Type == layerType && l.Name == name {
			return l, true
		}
		if l.Type == layerTypeGroup {
			if found, ok := findLayer(l.Layers, layerType, name); ok {
				return found, true
			}
		}
	}
	return nil, false
}
