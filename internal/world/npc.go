package world

// Direction is a facing on the grid.
type Direction uint8

const (
	DirDown Direction = iota
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
		return "down"
	}
}

// Delta returns the unit grid offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// NPCKind distinguishes the two town residents.
type NPCKind uint8

const (
	NPCVillager NPCKind = iota
	NPCTrainer
)

func (k NPCKind) String() string {
	if k == NPCTrainer {
		return "trainer"
	}
	return "villager"
}

// NPC is a resident tied to a town's week. Only Facing changes after generation.
type NPC struct {
	ID     int
	Name   string
	X, Y   int
	Week   int
	Facing Direction
	Kind   NPCKind
}

type npcSpot struct {
	dx, dy int
	facing Direction
	kind   NPCKind
}

// townResidents lists where a town's NPCs stand relative to its anchor.
// The starter town only has room for one.
func townResidents(theme Theme) []npcSpot {
	spots := []npcSpot{{dx: 2, dy: 1, facing: DirLeft, kind: NPCVillager}}
	if theme != ThemeStarter {
		spots = append(spots, npcSpot{dx: -2, dy: 2, facing: DirRight, kind: NPCTrainer})
	}
	return spots
}

func residentName(kind NPCKind, town string) string {
	if kind == NPCTrainer {
		return "Coach of " + town
	}
	return town + " local"
}
