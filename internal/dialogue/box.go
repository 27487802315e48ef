package dialogue

// Box is the bottom-of-screen text box. While visible it owns input: the
// first dismiss finishes the text, the second closes it.
type Box struct {
	Visible   bool
	OnDismiss func()

	tw Typewriter
}

// Open shows text, replacing anything already showing.
func (b *Box) Open(text string, onDismiss func()) {
	b.Visible = true
	b.OnDismiss = onDismiss
	b.tw.Start(text)
}

// Tick advances the reveal by one rune.
func (b *Box) Tick() {
	if b.Visible {
		b.tw.Tick()
	}
}

// Dismiss handles the confirm input. It reports whether the box closed.
func (b *Box) Dismiss() bool {
	if !b.Visible {
		return false
	}
	if !b.tw.Complete() {
		b.tw.FastForward()
		return false
	}
	b.Visible = false
	cb := b.OnDismiss
	b.OnDismiss = nil
	if cb != nil {
		cb()
	}
	return true
}

// Complete reports whether the text is fully revealed.
func (b *Box) Complete() bool { return b.tw.Complete() }

// Revealed returns the number of runes showing.
func (b *Box) Revealed() int { return b.tw.Revealed() }

// Text returns the whole text.
func (b *Box) Text() string { return b.tw.Full() }

// Shown returns the revealed prefix.
func (b *Box) Shown() string { return b.tw.Shown() }
