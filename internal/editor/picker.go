package editor

// Picker is the selection state of a list overlay.
type Picker struct {
	Active       bool
	Selected     int
	ScrollOffset int
}

// Show activates the picker with the given item pre-selected.
func (p *Picker) Show(current int) {
	p.Active = true
	p.Selected = current
	p.ScrollOffset = 0
}

func (p *Picker) Hide() {
	p.Active = false
}

// MoveUp moves the selection up, clamping at 0.
func (p *Picker) MoveUp() {
	if p.Selected > 0 {
		p.Selected--
	}
}

// MoveDown moves the selection down, clamping at n-1.
func (p *Picker) MoveDown(n int) {
	if p.Selected < n-1 {
		p.Selected++
	}
}

// Window returns the [start, end) slice of n items to show in height rows,
// scrolling so the selection stays visible.
func (p *Picker) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	if p.Selected >= n {
		p.Selected = n - 1
	}
	if p.Selected < p.ScrollOffset {
		p.ScrollOffset = p.Selected
	}
	if p.Selected >= p.ScrollOffset+height {
		p.ScrollOffset = p.Selected - height + 1
	}
	p.ScrollOffset = max(min(p.ScrollOffset, n-height), 0)
	return p.ScrollOffset, min(p.ScrollOffset+height, n)
}
