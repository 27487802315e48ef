package dialogue

// MenuAction identifies a start-menu entry.
type MenuAction uint8

const (
	MenuRecord MenuAction = iota
	MenuRoster
	MenuStats
	MenuSave
	MenuExit
)

// MenuItem is one row of the start menu.
type MenuItem struct {
	Label  string
	Action MenuAction
}

// DefaultMenuItems returns the start menu entries in display order.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "RECORD", Action: MenuRecord},
		{Label: "ROSTER", Action: MenuRoster},
		{Label: "STATS", Action: MenuStats},
		{Label: "SAVE", Action: MenuSave},
		{Label: "EXIT", Action: MenuExit},
	}
}

// Menu is the single start menu. It never stacks.
type Menu struct {
	Open  bool
	Index int
	Items []MenuItem
}

// NewMenu returns a closed menu with the default items.
func NewMenu() *Menu {
	return &Menu{Items: DefaultMenuItems()}
}

// Show opens the menu with the cursor on the first item.
func (m *Menu) Show() {
	m.Open = true
	m.Index = 0
}

// Up moves the cursor up, stopping at the first item.
func (m *Menu) Up() {
	if m.Index > 0 {
		m.Index--
	}
}

// Down moves the cursor down, stopping at the last item.
func (m *Menu) Down() {
	if m.Index < len(m.Items)-1 {
		m.Index++
	}
}

// Confirm closes the menu and returns the selected item.
func (m *Menu) Confirm() (MenuItem, bool) {
	if !m.Open || len(m.Items) == 0 {
		return MenuItem{}, false
	}
	m.Open = false
	return m.Items[m.Index], true
}

// Close shuts the menu without selecting.
func (m *Menu) Close() {
	m.Open = false
}
