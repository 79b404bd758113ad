package models

// Player represents a player in a lobby. SelectedNumber and Placement are
// pointers so that "not chosen yet" / "not placed yet" serialize as null on
// the wire.
type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SelectedNumber *int   `json:"selectedNumber"`
	IsEliminated   bool   `json:"isEliminated"`
	Placement      *int   `json:"placement"`
}

// Reset returns the player to their pre-round state, keeping id and name.
func (p *Player) Reset() {
	p.SelectedNumber = nil
	p.IsEliminated = false
	p.Placement = nil
}
