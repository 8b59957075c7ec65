// Command fbdemo renders a TOML scene description with fbdraw, to a PNG
// file or straight onto a Linux framebuffer.
//
// Usage:
//
//	fbdemo -scene scene.toml -output out.png
//	fbdemo -scene scene.toml -fb            # draw on /dev/fb0 (root)
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fbdraw/fbdraw"
	"github.com/fbdraw/fbdraw/text"
)

// Scene is the top-level TOML scene description.
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`

	Rectangles []RectangleSpec `toml:"rectangle"`
	Images     []ImageSpec     `toml:"image"`
	Captions   []CaptionSpec   `toml:"caption"`
}

// RectangleSpec describes one rectangle placement.
type RectangleSpec struct {
	Name        string `toml:"name"`
	X           int    `toml:"x"`
	Y           int    `toml:"y"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	BorderWidth *int   `toml:"border_width"`
	Border      string `toml:"border"`
	Fill        string `toml:"fill"`
}

// ImageSpec describes one image placement.
type ImageSpec struct {
	Name string `toml:"name"`
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Path string `toml:"path"`
}

// CaptionSpec describes one text placement.
type CaptionSpec struct {
	Name      string `toml:"name"`
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	Text      string `toml:"text"`
	Size      int    `toml:"size"`
	Color     string `toml:"color"`
	Family    string `toml:"family"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Monospace bool   `toml:"monospace"`
	MaxWidth  int    `toml:"max_width"`
	Align     string `toml:"align"`
}

func main() {
	var (
		scenePath = flag.String("scene", "scene.toml", "scene description file")
		output    = flag.String("output", "scene.png", "output PNG file")
		useFB     = flag.Bool("fb", false, "draw on the framebuffer instead of writing a PNG")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		fbdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	compositor, err := buildScene(scene)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	if *useFB {
		if err := drawToFramebuffer(compositor); err != nil {
			log.Fatalf("Failed to draw on framebuffer: %v", err)
		}
		return
	}

	if err := compositor.Render().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, scene.Width, scene.Height)
}

func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	var scene Scene
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("scene size must be positive, got %dx%d", scene.Width, scene.Height)
	}
	return &scene, nil
}

func buildScene(scene *Scene) (*fbdraw.Compositor, error) {
	background := fbdraw.RGB(255, 255, 255)
	if scene.Background != "" {
		c, err := fbdraw.ParseHex(scene.Background)
		if err != nil {
			return nil, err
		}
		background = c
	}
	compositor := fbdraw.NewCompositor(scene.Width, scene.Height, background)

	for _, spec := range scene.Rectangles {
		rect, err := buildRectangle(spec)
		if err != nil {
			return nil, fmt.Errorf("rectangle %q: %w", spec.Name, err)
		}
		compositor.Add(spec.Name, fbdraw.At(rect, spec.X, spec.Y))
	}
	for _, spec := range scene.Images {
		img, err := fbdraw.ImageFromPath(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", spec.Name, err)
		}
		compositor.Add(spec.Name, fbdraw.At(img, spec.X, spec.Y))
	}
	for _, spec := range scene.Captions {
		caption, err := buildCaption(spec)
		if err != nil {
			return nil, fmt.Errorf("caption %q: %w", spec.Name, err)
		}
		compositor.Add(spec.Name, fbdraw.At(caption, spec.X, spec.Y))
	}
	return compositor, nil
}

func buildRectangle(spec RectangleSpec) (*fbdraw.Rectangle, error) {
	var opts []fbdraw.RectangleOption
	if spec.BorderWidth != nil {
		opts = append(opts, fbdraw.WithBorderWidth(*spec.BorderWidth))
	}
	if spec.Border != "" {
		c, err := fbdraw.ParseHex(spec.Border)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fbdraw.WithBorderColor(c))
	}
	if spec.Fill != "" {
		c, err := fbdraw.ParseHex(spec.Fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fbdraw.WithFillColor(c))
	}
	return fbdraw.NewRectangle(spec.Width, spec.Height, opts...), nil
}

func buildCaption(spec CaptionSpec) (*text.Caption, error) {
	font, err := text.FindFont(text.Query{
		Family:    spec.Family,
		Bold:      spec.Bold,
		Italic:    spec.Italic,
		Monospace: spec.Monospace,
	})
	if err != nil {
		return nil, err
	}

	opts := []text.CaptionOption{}
	if spec.Color != "" {
		c, err := fbdraw.ParseHex(spec.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, text.WithColor(c))
	}
	if spec.MaxWidth > 0 {
		opts = append(opts, text.WithMaxWidth(spec.MaxWidth))
	}
	switch spec.Align {
	case "", "left":
	case "center":
		opts = append(opts, text.WithAlignment(text.AlignCenter))
	case "right":
		opts = append(opts, text.WithAlignment(text.AlignRight))
	default:
		return nil, fmt.Errorf("unknown alignment %q", spec.Align)
	}

	size := spec.Size
	if size == 0 {
		size = 16
	}
	return text.NewCaption(spec.Text, font, size, opts...), nil
}
