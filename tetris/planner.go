package tetris

// Candidate is a proposed placement for a piece. Candidates are tested for
// collision before anything is committed, so no partial move is ever observable.
type Candidate struct {
	Anchor Position
	Cells  []Position
	Mask   Mask
}

// PlanMove returns the placement of p moved speed cells in dir. The mask is unchanged.
func PlanMove(p *Piece, dir Direction, speed int) Candidate {
	dx, dy := dir.offset(speed)
	anchor := p.anchor.Add(dx, dy)
	return Candidate{
		Anchor: anchor,
		Cells:  p.mask.Cells(anchor),
		Mask:   p.mask,
	}
}

// PlanRotation returns the placement of p rotated a quarter turn about its anchor.
func PlanRotation(p *Piece, counterClockwise bool) Candidate {
	mask := p.mask.Rotate(counterClockwise)
	return Candidate{
		Anchor: p.anchor,
		Cells:  mask.Cells(p.anchor),
		Mask:   mask,
	}
}
