//go:build linux

package main

import (
	"github.com/fbdraw/fbdraw"
	"github.com/fbdraw/fbdraw/fbdev"
)

func drawToFramebuffer(c *fbdraw.Compositor) error {
	dev, err := fbdev.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = dev.Close()
	}()

	if err := dev.Draw(0, 0, c); err != nil {
		return err
	}
	dev.Flush()
	return nil
}
