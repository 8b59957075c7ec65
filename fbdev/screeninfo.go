package fbdev

import "github.com/fbdraw/fbdraw"

// Bitfield describes one color channel of the device pixel format: where
// the channel's bits sit inside a device word and how many there are.
type Bitfield struct {
	// Offset is the channel's bit offset from the right of the pixel.
	Offset uint32
	// Length is the channel's length in bits.
	Length uint32
	// MSBRight is nonzero when the most significant bit is on the right.
	// Zero on modern hardware.
	MSBRight uint32
}

// VarScreenInfo mirrors the kernel's fb_var_screeninfo structure, filled by
// the FBIOGET_VSCREENINFO ioctl. Field order and sizes must match the C
// layout exactly.
type VarScreenInfo struct {
	// XRes, YRes is the visible resolution in pixels.
	XRes uint32
	YRes uint32

	XResVirtual uint32
	YResVirtual uint32
	XOffset     uint32
	YOffset     uint32

	// BitsPerPixel is the size of one pixel. Must be 32 for this package.
	BitsPerPixel uint32
	// Grayscale is nonzero for grayscale framebuffers. Zero on modern
	// hardware.
	Grayscale uint32

	// Red, Green, Blue, Transp describe the channel bit fields.
	Red    Bitfield
	Green  Bitfield
	Blue   Bitfield
	Transp Bitfield

	NonStd   uint32
	Activate uint32

	// Height and Width of the picture in millimeters.
	Height uint32
	Width  uint32

	AccelFlags  uint32
	PixClock    uint32
	LeftMargin  uint32
	RightMargin uint32
	UpperMargin uint32
	LowerMargin uint32
	HSyncLen    uint32
	VSyncLen    uint32
	Sync        uint32
	VMode       uint32
	Rotate      uint32
	Colorspace  uint32
	Reserved    [4]uint32
}

// BufferSize returns the overall size of the visible framebuffer in bytes.
func (si *VarScreenInfo) BufferSize() int {
	return int(si.XRes * si.YRes * si.BitsPerPixel / 8)
}

// PackPixel packs a color into one device-native word per the screen's
// channel bit fields: each 8-bit channel is right-shifted down to the
// field's bit length and left-shifted into the field's bit offset. Alpha is
// packed like any other channel when the device has an alpha field; it is
// never used for blending.
func (si *VarScreenInfo) PackPixel(c fbdraw.Color) uint32 {
	return packChannel(c.R, si.Red) |
		packChannel(c.G, si.Green) |
		packChannel(c.B, si.Blue) |
		packChannel(c.A, si.Transp)
}

func packChannel(v uint8, f Bitfield) uint32 {
	shift := 8 - int(f.Length)
	if shift < 0 {
		shift = 0
	}
	return uint32(v) >> shift << f.Offset
}
