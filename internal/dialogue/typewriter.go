// Package dialogue holds the modal text box and start menu state machines.
package dialogue

// Typewriter reveals text one rune per tick. Revealed never decreases for a
// given text.
type Typewriter struct {
	text     []rune
	revealed int
}

// Start replaces the text and hides all of it.
func (t *Typewriter) Start(text string) {
	t.text = []rune(text)
	t.revealed = 0
}

// Tick reveals one more rune.
func (t *Typewriter) Tick() {
	if t.revealed < len(t.text) {
		t.revealed++
	}
}

// FastForward reveals everything. It is a no-op when already complete.
func (t *Typewriter) FastForward() {
	t.revealed = len(t.text)
}

// Complete reports whether the whole text is showing.
func (t *Typewriter) Complete() bool {
	return t.revealed >= len(t.text)
}

// Revealed returns how many runes are showing.
func (t *Typewriter) Revealed() int { return t.revealed }

// Len returns the text length in runes.
func (t *Typewriter) Len() int { return len(t.text) }

// Shown returns the revealed prefix.
func (t *Typewriter) Shown() string {
	return string(t.text[:t.revealed])
}

// Full returns the whole text.
func (t *Typewriter) Full() string {
	return string(t.text)
}
