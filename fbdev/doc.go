// Package fbdev writes pixel grids to a Linux framebuffer device.
//
// The device is the final sink of the fbdraw pipeline: [Open] memory-maps a
// /dev/fbN surface, queries its mode, and [Device.Draw] transfers any
// fbdraw.Shape onto a shadow buffer that [Device.Flush] copies to the
// hardware in one pass. Pixels are packed per the device's own per-channel
// bit fields; hardware writes are always fully opaque, so a color's alpha is
// informational only and never blended against existing screen contents.
//
// Opening a framebuffer typically requires root. Never draw on the virtual
// terminal owned by an X.org or Wayland server. Only 32-bit-per-pixel modes
// are supported.
package fbdev
