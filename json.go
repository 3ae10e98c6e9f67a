package maze

import (
	"encoding/json"
	"fmt"
)

func (s WallState) MarshalText() ([]byte, error) {
	switch s {
	case Wall, Passage:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("can't encode %s", s)
}

func (s *WallState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "wall":
		*s = Wall
	case "path":
		*s = Passage
	default:
		return NewError(ErrCodeInvalidEncoding, "bad wall state %q", text)
	}
	return nil
}

// The serialized form of a Grid. Cells are listed in row-major order.
type gridJSON struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Start  Coordinate `json:"start"`
	End    Coordinate `json:"end"`
	Cells  []Cell     `json:"cells"`
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{
		Width:  g.width,
		Height: g.height,
		Start:  g.start,
		End:    g.end,
		Cells:  g.cells,
	})
}

// Decodes a grid written by MarshalJSON. The result is checked for
// consistency: matching dimensions and cell count, the usual start and end,
// symmetric walls, and no passages leading off the grid.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	e := json.Unmarshal(data, &raw)
	if e != nil {
		return WrapError(ErrCodeInvalidEncoding, e, "malformed grid")
	}
	tmp, e := NewGrid(raw.Width, raw.Height)
	if e != nil {
		return WrapError(ErrCodeInvalidEncoding, e, "bad grid dimensions")
	}
	if len(raw.Cells) != len(tmp.cells) {
		return NewError(ErrCodeInvalidEncoding, "expected %d cells, got %d",
			len(tmp.cells), len(raw.Cells))
	}
	if (raw.Start != tmp.start) || (raw.End != tmp.end) {
		return NewError(ErrCodeInvalidEncoding, "start %s and end %s must "+
			"be %s and %s", raw.Start, raw.End, tmp.start, tmp.end)
	}
	copy(tmp.cells, raw.Cells)
	e = tmp.checkWalls()
	if e != nil {
		return WrapError(ErrCodeInvalidEncoding, e, "inconsistent walls")
	}
	*g = *tmp
	return nil
}

// Decodes a grid from JSON. All failures, including syntax errors, carry
// ErrCodeInvalidEncoding.
func DecodeGrid(data []byte) (*Grid, error) {
	toReturn := &Grid{}
	e := toReturn.UnmarshalJSON(data)
	if e != nil {
		return nil, e
	}
	return toReturn, nil
}
