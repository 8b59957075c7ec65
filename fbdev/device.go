//go:build linux

package fbdev

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/fbdraw/fbdraw"
)

// DefaultPath is the framebuffer device opened by [Open].
const DefaultPath = "/dev/fb0"

// fbioGetVScreenInfo is the FBIOGET_VSCREENINFO ioctl request.
const fbioGetVScreenInfo = 0x4600

// ErrUnsupportedDepth is returned by [Open] when the device's pixel size is
// not 32 bits.
var ErrUnsupportedDepth = errors.New("fbdev: pixel size must be 32 bits")

// ErrOutOfBounds is returned by [Device.Draw] when the placed grid does not
// fit the screen. Device offsets are a caller error, unlike compositor
// placement, which clips.
var ErrOutOfBounds = errors.New("fbdev: draw outside the screen bounds")

// Device is an open, memory-mapped framebuffer. Drawing goes to an
// in-process shadow buffer; [Device.Flush] copies the shadow to the
// hardware in one write. The hardware mapping is shared state with the
// display engine, so a Device must not be used from multiple goroutines
// without external locking.
type Device struct {
	// Info is the screen mode queried at open time.
	Info VarScreenInfo

	file   *os.File
	mapped []byte
	shadow []byte
}

// Open opens and maps /dev/fb0. It requires root on most systems.
func Open() (*Device, error) {
	return OpenPath(DefaultPath)
}

// OpenPath opens and maps the framebuffer device at the given path,
// queries its mode and verifies that it uses 32 bits per pixel.
func OpenPath(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0) //nolint:gosec // device path is user-provided intentionally
	if err != nil {
		return nil, err
	}

	var info VarScreenInfo
	if err := ioctlScreenInfo(f.Fd(), &info); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("fbdev: FBIOGET_VSCREENINFO on %s: %w", path, err)
	}
	if info.BitsPerPixel != 32 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s has %d bpp", ErrUnsupportedDepth, path, info.BitsPerPixel)
	}

	mapped, err := unix.Mmap(int(f.Fd()), 0, info.BufferSize(),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("fbdev: mmap %s: %w", path, err)
	}

	fbdraw.Logger().Info("fbdev: device opened",
		"path", path, "xres", info.XRes, "yres", info.YRes,
		"bpp", info.BitsPerPixel)

	return &Device{
		Info:   info,
		file:   f,
		mapped: mapped,
		shadow: make([]byte, len(mapped)),
	}, nil
}

func ioctlScreenInfo(fd uintptr, info *VarScreenInfo) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, fbioGetVScreenInfo,
		uintptr(unsafe.Pointer(info)))
	if errno != 0 {
		return errno
	}
	return nil
}

// SetPixel writes one color into the shadow buffer at (x, y), packed per
// the device pixel format. The coordinates must be inside the screen.
func (d *Device) SetPixel(x, y int, c fbdraw.Color) {
	pos := (y*int(d.Info.XRes) + x) * 4
	binary.NativeEndian.PutUint32(d.shadow[pos:pos+4], d.Info.PackPixel(c))
}

// Draw renders the shape and writes every covered cell of its grid into the
// shadow buffer at the given offset. The whole grid must fit the screen;
// out-of-bounds placement returns [ErrOutOfBounds] without writing
// anything. Uncovered cells leave the shadow untouched.
func (d *Device) Draw(x, y int, s fbdraw.Shape) error {
	grid := s.Render()
	if x < 0 || y < 0 ||
		x+grid.Width() > int(d.Info.XRes) || y+grid.Height() > int(d.Info.YRes) {
		return fmt.Errorf("%w: %dx%d grid at (%d, %d) on %dx%d screen",
			ErrOutOfBounds, grid.Width(), grid.Height(), x, y, d.Info.XRes, d.Info.YRes)
	}
	for gy, row := range grid {
		for gx, p := range row {
			if p.Set {
				d.SetPixel(x+gx, y+gy, p.C)
			}
		}
	}
	return nil
}

// Compositor creates a compositor sized to the screen with the given
// background color.
func (d *Device) Compositor(background fbdraw.Color) *fbdraw.Compositor {
	return fbdraw.NewCompositor(int(d.Info.XRes), int(d.Info.YRes), background)
}

// Flush copies the shadow buffer to the hardware mapping. Partial screen
// contents become visible immediately; there is no atomicity beyond the
// single copy.
func (d *Device) Flush() {
	copy(d.mapped, d.shadow)
}

// Close unmaps the framebuffer and closes the device file.
func (d *Device) Close() error {
	err := unix.Munmap(d.mapped)
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}
