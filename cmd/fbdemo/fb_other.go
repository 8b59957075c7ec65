//go:build !linux

package main

import (
	"errors"

	"github.com/fbdraw/fbdraw"
)

func drawToFramebuffer(*fbdraw.Compositor) error {
	return errors.New("framebuffer output is only supported on linux")
}
