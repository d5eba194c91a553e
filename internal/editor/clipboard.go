package editor

import "github.com/atotto/clipboard"

// Clipboard is where copied and cut text goes.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// SystemClipboard uses the platform clipboard and keeps the last text written
// through it, which is what Read returns on machines without a clipboard
// utility.
type SystemClipboard struct {
	last string
}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return c.last, nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return c.last, err
	}
	return text, nil
}

func (c *SystemClipboard) Write(text string) error {
	c.last = text
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}
