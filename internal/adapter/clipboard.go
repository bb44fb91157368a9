// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard is the OS clipboard. On Linux it needs xclip, xsel,
// wl-clipboard or termux-clipboard on PATH.
type SystemClipboard struct {
	read        func() (string, error)
	write       func(string) error
	unsupported func() bool
}

// NewSystemClipboard returns a clipboard backed by github.com/atotto/clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Read returns the clipboard text.
func (c *SystemClipboard) Read() (string, error) {
	if c.unsupported() {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrClipboardAccess)
	}

	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("%w: read: %v", ErrClipboardAccess, err)
	}
	return text, nil
}

// Write replaces the clipboard text.
func (c *SystemClipboard) Write(text string) error {
	if c.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboardAccess)
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: write: %v", ErrClipboardAccess, err)
	}
	return nil
}

// Available reports whether a clipboard read currently succeeds.
func (c *SystemClipboard) Available() bool {
	_, err := c.Read()
	return err == nil
}
