package editor

// CommandLine is the editable text of the command row.
type CommandLine struct {
	input  []rune
	cursor int
}

// Set replaces the input and puts the cursor at its end.
func (c *CommandLine) Set(s string) {
	c.input = []rune(s)
	c.cursor = len(c.input)
}

func (c *CommandLine) Reset() {
	c.input = c.input[:0]
	c.cursor = 0
}

func (c *CommandLine) String() string { return string(c.input) }

// Cursor is the rune offset of the cursor in the input.
func (c *CommandLine) Cursor() int { return c.cursor }

func (c *CommandLine) Insert(r rune) {
	c.input = append(c.input, 0)
	copy(c.input[c.cursor+1:], c.input[c.cursor:])
	c.input[c.cursor] = r
	c.cursor++
}

// Backspace removes the rune before the cursor.
func (c *CommandLine) Backspace() {
	if c.cursor == 0 {
		return
	}
	c.input = append(c.input[:c.cursor-1], c.input[c.cursor:]...)
	c.cursor--
}

// Delete removes the rune under the cursor.
func (c *CommandLine) Delete() {
	if c.cursor >= len(c.input) {
		return
	}
	c.input = append(c.input[:c.cursor], c.input[c.cursor+1:]...)
}

func (c *CommandLine) Left() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *CommandLine) Right() {
	if c.cursor < len(c.input) {
		c.cursor++
	}
}

func (c *CommandLine) Home() { c.cursor = 0 }
func (c *CommandLine) End()  { c.cursor = len(c.input) }
