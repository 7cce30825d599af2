package core

// Direction is a logical movement input. Keyboard keys from any host map to
// one of these before they reach entities.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Directions is the set of directions currently held.
type Directions struct {
	held map[Direction]bool
}

// NewDirections creates an empty direction set.
func NewDirections() Directions {
	return Directions{held: make(map[Direction]bool)}
}

// Press marks a direction as held.
func (d *Directions) Press(dir Direction) {
	if d.held == nil {
		d.held = make(map[Direction]bool)
	}
	if dir != DirNone {
		d.held[dir] = true
	}
}

// Release marks a direction as no longer held.
func (d *Directions) Release(dir Direction) {
	delete(d.held, dir)
}

// Held reports whether a direction is currently held.
func (d Directions) Held(dir Direction) bool {
	return d.held[dir]
}

// Clear releases every direction.
func (d *Directions) Clear() {
	clear(d.held)
}

// Axis returns -1 for left, +1 for right and 0 when neither or both are held.
func (d Directions) Axis() float64 {
	var a float64
	if d.Held(DirLeft) {
		a--
	}
	if d.Held(DirRight) {
		a++
	}
	return a
}
