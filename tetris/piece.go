package tetris

// SpawnAnchor is where new pieces enter the playfield.
var SpawnAnchor = Position{X: 3, Y: 0}

// Piece is a shape kind with its current body mask and anchor. Its occupied cells
// are always derived from (anchor, mask).
type Piece struct {
	kind   Kind
	mask   Mask
	anchor Position
	cells  []Position
}

// NewPiece creates a piece of kind with its canonical mask at anchor.
func NewPiece(kind Kind, anchor Position) (*Piece, error) {
	mask, err := ShapeMask(kind)
	if err != nil {
		return nil, err
	}

	return &Piece{
		kind:   kind,
		mask:   mask,
		anchor: anchor,
		cells:  mask.Cells(anchor),
	}, nil
}

// SpawnPiece draws a kind from source and creates a piece at anchor.
func SpawnPiece(source ShapeSource, anchor Position) (*Piece, error) {
	return NewPiece(source.NextShapeKind(), anchor)
}

func (p *Piece) Kind() Kind { return p.kind }

// Anchor returns the top-left corner of the piece's bounding box.
func (p *Piece) Anchor() Position { return p.anchor }

// Mask returns a copy of the current body mask.
func (p *Piece) Mask() Mask { return p.mask.Clone() }

// Cells returns a copy of the absolute occupied positions.
func (p *Piece) Cells() []Position {
	out := make([]Position, len(p.cells))
	copy(out, p.cells)
	return out
}

// apply commits a candidate placement to the piece.
func (p *Piece) apply(c Candidate) {
	p.anchor = c.Anchor
	p.mask = c.Mask
	p.cells = c.Mask.Cells(c.Anchor)
}

// PieceView is a read-only copy of a piece for renderers.
type PieceView struct {
	Kind   Kind
	Mask   Mask
	Anchor Position
	Cells  []Position
}

func (p *Piece) view() PieceView {
	if p == nil {
		return PieceView{}
	}
	return PieceView{
		Kind:   p.kind,
		Mask:   p.Mask(),
		Anchor: p.anchor,
		Cells:  p.Cells(),
	}
}
