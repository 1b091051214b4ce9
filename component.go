package jpeg

// colorComponent is a per-component descriptor, populated first by SOF0 and
// then completed by SOS. Indexed by id-1 in the header's fixed 3-slot array
// (baseline supports at most Y, Cb, Cr — see SPEC_FULL.md Design Notes on
// the component-array-size Open Question).
type colorComponent struct {
	set   bool
	id    int
	hFactor, vFactor int
	qtableSelector   int
	dcHuffmanSelector int
	acHuffmanSelector int
	usedInSOF bool
	usedInSOS bool
}

const maxComponents = 3

// Used reports whether this component slot was set by SOF0 and referenced
// by SOS (the only components a caller should read coefficients for).
func (c *colorComponent) Used() bool              { return c.usedInSOF && c.usedInSOS }
func (c *colorComponent) ID() int                 { return c.id }
func (c *colorComponent) HFactor() int            { return c.hFactor }
func (c *colorComponent) VFactor() int            { return c.vFactor }
func (c *colorComponent) QTableSelector() int     { return c.qtableSelector }
func (c *colorComponent) DCHuffmanSelector() int  { return c.dcHuffmanSelector }
func (c *colorComponent) ACHuffmanSelector() int  { return c.acHuffmanSelector }
