package core

// EntityKind identifies a collidable scene entity. Collision routing
// switches exhaustively over this closed set.
type EntityKind uint8

const (
	KindBall EntityKind = iota
	KindRacket
	KindTable
	KindWall
	KindGround
	KindCount
)

func (k EntityKind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindRacket:
		return "racket"
	case KindTable:
		return "table"
	case KindWall:
		return "wall"
	case KindGround:
		return "ground"
	default:
		return "unknown"
	}
}
