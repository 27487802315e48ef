package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/season-quest/internal/battle"
	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/dialogue"
	"github.com/vovakirdan/season-quest/internal/world"
)

// Screen layout.
const (
	cellCols  = 2 // screen columns per tile
	hudRows   = 1
	boxRows   = 6
	hpBarCols = 20
)

type glyph struct {
	runes [cellCols]rune
	color core.Color
}

var tileGlyphs = [...]glyph{
	world.TileGrass:        {[2]rune{' ', ' '}, core.ColorGrass},
	world.TileTallGrass:    {[2]rune{'"', '"'}, core.ColorTallGrass},
	world.TilePath:         {[2]rune{' ', ' '}, core.ColorPath},
	world.TileWater:        {[2]rune{'~', '~'}, core.ColorWater},
	world.TileTree:         {[2]rune{'♣', ' '}, core.ColorTree},
	world.TileWall:         {[2]rune{'▓', '▓'}, core.ColorWall},
	world.TileRoof:         {[2]rune{'▲', '▲'}, core.ColorRoof},
	world.TileFence:        {[2]rune{'#', '#'}, core.ColorFence},
	world.TileFlowerRed:    {[2]rune{'*', ' '}, core.ColorFlowerRed},
	world.TileFlowerYellow: {[2]rune{'*', ' '}, core.ColorFlowerYellow},
	world.TileSand:         {[2]rune{'.', ' '}, core.ColorSand},
	world.TileRock:         {[2]rune{'o', 'o'}, core.ColorRock},
	world.TileLedge:        {[2]rune{'_', '_'}, core.ColorGrass},
	world.TileSign:         {[2]rune{'[', ']'}, core.ColorFence},
	world.TileDoor:         {[2]rune{'▐', '▌'}, core.ColorDoor},
	world.TileDarkGrass:    {[2]rune{',', ' '}, core.ColorDarkGrass},
	world.TileSnow:         {[2]rune{'·', ' '}, core.ColorSnow},
	world.TileCave:         {[2]rune{'(', ')'}, core.ColorRock},
	world.TileBridge:       {[2]rune{'=', '='}, core.ColorPath},
	world.TileMountain:     {[2]rune{'/', '\\'}, core.ColorRock},
}

var facingGlyph = map[world.Direction]rune{
	world.DirUp:    '^',
	world.DirDown:  'v',
	world.DirLeft:  '<',
	world.DirRight: '>',
}

// Render paints the current state onto screen.
func (s *State) Render(screen *core.Screen) {
	screen.Clear()
	if s.Mode == ModeBattle && s.Battle != nil {
		s.renderBattle(screen, s.Battle)
	} else {
		s.renderWorld(screen)
		s.renderHUD(screen)
		if s.Banner.Ticks > 0 {
			renderBanner(screen, s.Banner.Text)
		}
		if s.Mode == ModeMenu {
			renderMenu(screen, s.Menu)
		}
		if s.Mode == ModeOverlay {
			s.renderOverlay(screen)
		}
	}
	if s.Box.Visible {
		renderTextBox(screen, s.Box.Shown())
	}
	s.renderCover(screen)
}

func (s *State) renderWorld(screen *core.Screen) {
	cols := screen.Width() / cellCols
	rows := screen.Height() - hudRows
	ox := int(math.Round(s.Camera.X)) / world.TileSize
	oy := int(math.Round(s.Camera.Y)) / world.TileSize

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g := tileGlyphs[s.Map.At(ox+c, oy+r)]
			for i, ch := range g.runes {
				screen.SetCell(c*cellCols+i, hudRows+r, ch, g.color)
			}
		}
	}

	view := core.NewRect(ox, oy, cols, rows)
	for _, npc := range s.Map.NPCs {
		if !view.Contains(npc.X, npc.Y) {
			continue
		}
		kind := 'V'
		if npc.Kind == world.NPCTrainer {
			kind = 'T'
		}
		x, y := (npc.X-ox)*cellCols, hudRows+npc.Y-oy
		screen.SetCell(x, y, kind, core.ColorNPC)
		screen.SetCell(x+1, y, facingGlyph[npc.Facing], core.ColorNPC)
	}

	// The avatar is drawn at its interpolated position.
	px := int(math.Round((s.Avatar.PixelX - s.Camera.X) / world.TileSize * cellCols))
	py := hudRows + int(math.Round((s.Avatar.PixelY-s.Camera.Y)/world.TileSize))
	screen.SetCell(px, py, '@', core.ColorPlayer)
	screen.SetCell(px+1, py, facingGlyph[s.Avatar.Facing], core.ColorPlayer)
}

func (s *State) renderHUD(screen *core.Screen) {
	screen.DrawRect(core.NewRect(0, 0, screen.Width(), hudRows), ' ', core.ColorText)
	w, l := s.Record()
	name := s.TeamName
	if name == "" {
		name = "COACH"
	}
	screen.DrawTextColor(1, 0, fmt.Sprintf("%s  W %d  L %d", strings.ToUpper(name), w, l), core.ColorText)

	hint := "[x] menu"
	if week := s.NearWeek(); week != 0 {
		if loc, ok := s.Map.Location(week); ok {
			hint = fmt.Sprintf("%s - Week %d  [enter] stats", loc.Name, week)
		}
	}
	screen.DrawTextColor(screen.Width()-runewidth.StringWidth(hint)-1, 0, hint, core.ColorHighlight)
}

func renderBanner(screen *core.Screen, text string) {
	w := runewidth.StringWidth(text) + 4
	r := core.NewRect((screen.Width()-w)/2, hudRows+1, w, 3)
	screen.DrawBox(r, core.ColorText)
	screen.DrawTextColor(r.X+2, r.Y+1, text, core.ColorText)
}

func renderMenu(screen *core.Screen, m *dialogue.Menu) {
	w := 14
	r := core.NewRect(screen.Width()-w-1, hudRows, w, len(m.Items)+2)
	screen.DrawBox(r, core.ColorText)
	for i, item := range m.Items {
		prefix := "  "
		c := core.ColorText
		if i == m.Index {
			prefix = "▶ "
			c = core.ColorHighlight
		}
		screen.DrawTextColor(r.X+1, r.Y+1+i, prefix+item.Label, c)
	}
}

// renderTextBox draws the dialogue box along the bottom of the screen.
func renderTextBox(screen *core.Screen, text string) {
	h := min(boxRows, screen.Height())
	r := core.NewRect(0, screen.Height()-h, screen.Width(), h)
	screen.DrawBox(r, core.ColorText)
	lines := strings.Split(wordwrap.String(text, max(1, r.W-4)), "\n")
	for i, line := range lines {
		if i >= r.H-2 {
			break
		}
		screen.DrawTextColor(r.X+2, r.Y+1+i, line, core.ColorText)
	}
}

func (s *State) renderOverlay(screen *core.Screen) {
	r := core.NewRect(1, hudRows, screen.Width()-2, screen.Height()-hudRows)
	screen.DrawBox(r, core.ColorHighlight)
	screen.DrawTextCentered(r.Y+1, s.OverlayTitle(), core.ColorHighlight)

	lines := s.OverlayLines(r.W - 4)
	visible := r.H - 5
	scroll := core.Clamp(s.Overlay.Scroll, 0, max(0, len(lines)-visible))
	for i := 0; i < visible && scroll+i < len(lines); i++ {
		screen.DrawTextColor(r.X+2, r.Y+3+i, lines[scroll+i], core.ColorText)
	}

	var nav []string
	if s.Overlay.Week > s.StartWeek {
		nav = append(nav, "< prev")
	}
	if s.Overlay.Week < s.EndWeek {
		nav = append(nav, "next >")
	}
	nav = append(nav, "esc close")
	screen.DrawTextCentered(r.Bottom()-2, strings.Join(nav, "   "), core.ColorDim)
}

func hpColor(hp, maxHP float64) core.Color {
	switch ratio := hp / maxHP; {
	case ratio > 0.5:
		return core.ColorHPGreen
	case ratio > 0.2:
		return core.ColorHPYellow
	default:
		return core.ColorHPRed
	}
}

func drawHP(screen *core.Screen, x, y int, name string, hp, maxHP float64) {
	screen.DrawTextColor(x, y, name, core.ColorText)
	screen.DrawTextColor(x, y+1, "HP", core.ColorHighlight)
	filled := int(math.Round(hp / maxHP * hpBarCols))
	c := hpColor(hp, maxHP)
	for i := 0; i < hpBarCols; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		screen.SetCell(x+3+i, y+1, ch, c)
	}
	screen.DrawTextColor(x+3, y+2, fmt.Sprintf("%5.1f/%5.1f", hp, maxHP), core.ColorText)
}

func (s *State) renderBattle(screen *core.Screen, b *battle.Battle) {
	shake := func(side battle.Side) int {
		if b.HitTick > 0 && b.LastHit == side {
			if b.HitTick%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}

	w := screen.Width()
	drawHP(screen, 2+shake(battle.SideEnemy), 1, b.EnemyName, b.EnemyHP, b.MaxHP)
	screen.DrawTextColor(w-12+shake(battle.SideEnemy), 2, "[ò_ó]", core.ColorNPC)

	bottom := screen.Height() - boxRows
	screen.DrawTextColor(4+shake(battle.SidePlayer), bottom-3, "[•_•]", core.ColorPlayer)
	drawHP(screen, w-hpBarCols-6+shake(battle.SidePlayer), bottom-4, b.PlayerName, b.PlayerHP, b.MaxHP)

	renderTextBox(screen, b.Text())

	if b.Phase == battle.PhaseDone && b.TextComplete() {
		r := core.NewRect(w-16, bottom-len(battle.Choices)-2, 15, len(battle.Choices)+2)
		screen.DrawBox(r, core.ColorText)
		for i, label := range battle.Choices {
			prefix := "  "
			c := core.ColorText
			if i == b.Choice {
				prefix = "▶ "
				c = core.ColorHighlight
			}
			screen.DrawTextColor(r.X+1, r.Y+1+i, prefix+label, c)
		}
	}
}

// renderCover closes the screen from the top and bottom edges as the
// transition alpha rises.
func (s *State) renderCover(screen *core.Screen) {
	if !s.Trans.Active() {
		return
	}
	h := screen.Height()
	n := int(math.Ceil(s.Trans.Alpha * float64(h) / 2))
	if s.Trans.Alpha >= 1 {
		n = h
	}
	for y := 0; y < n; y++ {
		screen.DrawRect(core.NewRect(0, y, screen.Width(), 1), ' ', core.ColorCover)
		screen.DrawRect(core.NewRect(0, h-1-y, screen.Width(), 1), ' ', core.ColorCover)
	}
	if s.Loading() {
		screen.DrawTextCentered(h/2-1, fmt.Sprintf("Loading week %d...", s.Trans.Week), core.ColorHighlight)
		screen.DrawTextCentered(h/2+1, s.Tagline(), core.ColorText)
	}
}
