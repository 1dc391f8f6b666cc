package worldmodel

// FloatGrid is a height x width grid of float32 scalars, stored row-major.
type FloatGrid struct {
	width, height int
	data          []float32
}

// NewFloatGrid allocates a zeroed grid. Allocation happens once, at a
// stage's first write; there is no reallocation afterward.
func NewFloatGrid(width, height int) *FloatGrid {
	return &FloatGrid{width: width, height: height, data: make([]float32, width*height)}
}

func (g *FloatGrid) Width() int  { return g.width }
func (g *FloatGrid) Height() int { return g.height }

func (g *FloatGrid) Get(x, y int) float32 { return g.data[y*g.width+x] }
func (g *FloatGrid) Set(x, y int, v float32) { g.data[y*g.width+x] = v }

// Raw exposes the backing row-major slice for bulk operations (ingest from
// the tectonic driver, quantile scans).
func (g *FloatGrid) Raw() []float32 { return g.data }

// Uint16Grid is a height x width grid of uint16 scalars (the plates layer).
type Uint16Grid struct {
	width, height int
	data          []uint16
}

func NewUint16Grid(width, height int) *Uint16Grid {
	return &Uint16Grid{width: width, height: height, data: make([]uint16, width*height)}
}

func (g *Uint16Grid) Width() int  { return g.width }
func (g *Uint16Grid) Height() int { return g.height }

func (g *Uint16Grid) Get(x, y int) uint16    { return g.data[y*g.width+x] }
func (g *Uint16Grid) Set(x, y int, v uint16) { g.data[y*g.width+x] = v }
func (g *Uint16Grid) Raw() []uint16          { return g.data }

// BoolGrid is a height x width grid of booleans (the ocean layer).
type BoolGrid struct {
	width, height int
	data          []bool
}

func NewBoolGrid(width, height int) *BoolGrid {
	return &BoolGrid{width: width, height: height, data: make([]bool, width*height)}
}

func (g *BoolGrid) Width() int  { return g.width }
func (g *BoolGrid) Height() int { return g.height }

func (g *BoolGrid) Get(x, y int) bool    { return g.data[y*g.width+x] }
func (g *BoolGrid) Set(x, y int, v bool) { g.data[y*g.width+x] = v }

// BiomeGrid is a height x width grid of Biome values.
type BiomeGrid struct {
	width, height int
	data          []Biome
}

func NewBiomeGrid(width, height int) *BiomeGrid {
	return &BiomeGrid{width: width, height: height, data: make([]Biome, width*height)}
}

func (g *BiomeGrid) Width() int  { return g.width }
func (g *BiomeGrid) Height() int { return g.height }

func (g *BiomeGrid) Get(x, y int) Biome    { return g.data[y*g.width+x] }
func (g *BiomeGrid) Set(x, y int, v Biome) { g.data[y*g.width+x] = v }
