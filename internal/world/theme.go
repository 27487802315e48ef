package world

// decorator stamps theme-specific detail around a town anchored at (cx, cy).
type decorator func(g *grid, cx, cy int)

// decorators has one entry per Theme; a missing entry is caught by tests.
var decorators = [themeCount]decorator{
	ThemeStarter:  decorateStarter,
	ThemeCity:     decorateCity,
	ThemeRock:     decorateRock,
	ThemeWater:    decorateWater,
	ThemeElectric: decorateElectric,
	ThemeGhost:    decorateGhost,
	ThemeNature:   decorateNature,
	ThemePoison:   decoratePoison,
	ThemePsychic:  decoratePsychic,
	ThemeFire:     decorateFire,
	ThemeIce:      decorateIce,
	ThemeDark:     decorateDark,
	ThemeChampion: decorateChampion,
	ThemeLeague:   decorateLeague,
}

// sideHouse puts a one-cell house with a roof at (x, y-1).
func sideHouse(g *grid, x, y int) {
	g.place(x, y-1, TileRoof)
	g.place(x, y, TileWall)
}

func decorateStarter(g *grid, cx, cy int) {
	g.place(cx+3, cy-1, TileFence)
	g.place(cx+3, cy, TileFence)
	g.place(cx-3, cy+1, TileFlowerRed)
	g.place(cx-2, cy+1, TileFlowerYellow)
	g.place(cx+2, cy+2, TileSign)
}

func decorateCity(g *grid, cx, cy int) {
	sideHouse(g, cx+3, cy-1)
	sideHouse(g, cx-3, cy-1)
	g.place(cx, cy+2, TileSign)
}

func decorateRock(g *grid, cx, cy int) {
	g.place(cx-3, cy, TileRock)
	g.place(cx+3, cy-1, TileRock)
	g.place(cx-2, cy+2, TileRock)
	g.place(cx+2, cy+2, TileRock)
}

func decorateWater(g *grid, cx, cy int) {
	for _, dx := range []int{-3, -4} {
		g.place(cx+dx, cy+1, TileWater)
		g.place(cx+dx, cy+2, TileWater)
	}
	g.place(cx+3, cy+2, TileBridge)
}

func decorateElectric(g *grid, cx, cy int) {
	sideHouse(g, cx+3, cy-1)
	for dx := -3; dx <= -1; dx++ {
		g.place(cx+dx, cy+1, TileFence)
	}
}

func decorateGhost(g *grid, cx, cy int) {
	// A tower: roof over three wall cells.
	g.place(cx+3, cy-3, TileRoof)
	for dy := -2; dy <= 0; dy++ {
		g.place(cx+3, cy+dy, TileWall)
	}
	g.place(cx-3, cy, TileSign)
}

func decorateNature(g *grid, cx, cy int) {
	g.place(cx-3, cy+1, TileFlowerRed)
	g.place(cx-2, cy+1, TileFlowerYellow)
	g.place(cx-1, cy+1, TileFlowerRed)
	g.place(cx+2, cy+1, TileTree)
	g.place(cx+3, cy+1, TileTree)
}

func decoratePoison(g *grid, cx, cy int) {
	g.place(cx-3, cy+1, TileFence)
	g.place(cx-3, cy+2, TileFence)
	g.place(cx+3, cy+1, TileTallGrass)
	g.place(cx+4, cy+1, TileTallGrass)
}

func decoratePsychic(g *grid, cx, cy int) {
	sideHouse(g, cx+3, cy-1)
	sideHouse(g, cx-3, cy-1)
	g.place(cx+3, cy+1, TileSign)
	g.place(cx-3, cy+1, TileSign)
}

func decorateFire(g *grid, cx, cy int) {
	g.place(cx-3, cy+1, TileSand)
	g.place(cx-2, cy+1, TileSand)
	g.place(cx+3, cy+1, TileSand)
	g.place(cx-3, cy+2, TileWater)
	g.place(cx+3, cy+2, TileWater)
}

func decorateIce(g *grid, cx, cy int) {
	g.place(cx-3, cy, TileSnow)
	g.place(cx-2, cy+1, TileSnow)
	g.place(cx+3, cy+1, TileSnow)
	g.place(cx+2, cy, TileSnow)
	g.place(cx-3, cy+2, TileWater)
	g.place(cx+3, cy+2, TileWater)
}

func decorateDark(g *grid, cx, cy int) {
	g.place(cx-3, cy, TileCave)
	g.place(cx-3, cy-1, TileMountain)
	g.place(cx+3, cy-1, TileMountain)
	g.place(cx+3, cy, TileRock)
}

func decorateChampion(g *grid, cx, cy int) {
	for dx := -2; dx <= 2; dx++ {
		g.place(cx+dx, cy-3, TileRoof)
	}
	g.place(cx+3, cy-1, TileFence)
	g.place(cx-3, cy-1, TileFence)
}

func decorateLeague(g *grid, cx, cy int) {
	for dx := -3; dx <= 3; dx++ {
		g.place(cx+dx, cy-3, TileRoof)
	}
	for _, dx := range []int{-3, 3} {
		g.place(cx+dx, cy-2, TileWall)
		g.place(cx+dx, cy-1, TileWall)
	}
	g.place(cx, cy+2, TileSign)
}
