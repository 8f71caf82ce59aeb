// Command swdemo demonstrates the swcanvas 2D graphics library.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/davidedc/swcanvas"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "demo.png", "output file (.png or .bmp)")
		sceneFile = flag.String("scene", "", "render a TOML scene file instead of the built-in demo")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		swcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var dc *swcanvas.Context
	if *sceneFile != "" {
		sc, err := loadScene(*sceneFile)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		dc, err = renderScene(sc, *width, *height)
		if err != nil {
			log.Fatalf("Failed to render scene: %v", err)
		}
	} else {
		var err error
		dc, err = swcanvas.NewContext(*width, *height)
		if err != nil {
			log.Fatalf("Failed to create context: %v", err)
		}
		drawGradientBackground(dc, *width, *height)
		drawShapesDemo(dc)
		drawTransformDemo(dc)
		drawPathDemo(dc)
		drawClipDemo(dc)
	}

	var err error
	switch strings.ToLower(filepath.Ext(*output)) {
	case ".bmp":
		err = dc.SaveBMP(*output)
	default:
		err = dc.SavePNG(*output)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d)\n", *output, dc.Width(), dc.Height())
}

func rgb(r, g, b int) swcanvas.Color {
	c, err := swcanvas.NewColor(r, g, b, 255)
	if err != nil {
		return swcanvas.Black
	}
	return c
}

func rgba(r, g, b, a int) swcanvas.Color {
	c, err := swcanvas.NewColor(r, g, b, a)
	if err != nil {
		return swcanvas.Black
	}
	return c
}

func drawGradientBackground(dc *swcanvas.Context, w, h int) {
	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		c := rgb(int(25+t*100), int(50+t*75), int(100+t*50))
		dc.SetFillColor(c)
		y := float64(h) * t
		dc.DrawRectangle(0, y, float64(w), float64(h)/float64(steps)+1)
		dc.Fill()
	}
}

func drawShapesDemo(dc *swcanvas.Context) {
	// Overlapping translucent circles
	dc.SetFillColor(rgba(255, 80, 80, 204))
	dc.DrawCircle(150, 150, 60)
	dc.Fill()

	dc.SetFillColor(rgba(80, 255, 80, 204))
	dc.DrawCircle(200, 150, 60)
	dc.Fill()

	dc.SetFillColor(rgba(80, 80, 255, 204))
	dc.DrawCircle(175, 200, 60)
	dc.Fill()

	// Rounded rectangle
	dc.SetFillColorString("gold")
	dc.DrawRoundedRectangle(350, 100, 120, 80, 15)
	dc.Fill()

	// Stroked outline on top
	dc.SetStrokeColor(swcanvas.White)
	dc.SetLineWidth(4)
	dc.DrawRectangle(350, 100, 120, 80)
	dc.Stroke()
}

func drawTransformDemo(dc *swcanvas.Context) {
	// Rotated squares
	centerX := 600.0
	centerY := 150.0

	palette := []string{
		"tomato", "gold", "springgreen", "turquoise",
		"steelblue", "slateblue", "orchid", "hotpink",
	}

	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		dc.Push()
		dc.Translate(centerX, centerY)
		dc.Rotate(angle)

		dc.SetFillColorString(palette[i])
		dc.DrawRectangle(-30, -30, 60, 60)
		dc.Fill()
		dc.Pop()
	}
}

func drawPathDemo(dc *swcanvas.Context) {
	// Stroked wave
	dc.Push()
	dc.Translate(150, 400)

	dc.SetStrokeColorString("orange")
	dc.MoveTo(0, 0)
	dc.CubicTo(50, -50, 100, 50, 150, 0)
	dc.CubicTo(200, -30, 250, 30, 300, 0)
	dc.SetLineWidth(6)
	dc.Stroke()

	// Dashed second wave below
	dc.SetStrokeColorString("yellowgreen")
	dc.SetDash(12, 8)
	dc.MoveTo(0, 60)
	dc.CubicTo(50, 10, 100, 110, 150, 60)
	dc.CubicTo(200, 30, 250, 90, 300, 60)
	dc.Stroke()
	dc.SetDash()

	// Polygon star
	dc.Translate(400, 0)
	dc.SetFillColorString("gold")

	points := 5
	outerR := 60.0
	innerR := 30.0

	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := r * math.Cos(angle-math.Pi/2)
		y := r * math.Sin(angle-math.Pi/2)

		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()

	dc.Pop()
}

func drawClipDemo(dc *swcanvas.Context) {
	// Striped disc: a circular clip over diagonal bands
	dc.Push()
	dc.DrawCircle(650, 450, 80)
	dc.Clip()

	dc.SetFillColorString("crimson")
	for i := 0; i < 12; i++ {
		x := 540.0 + float64(i)*25
		dc.MoveTo(x, 550)
		dc.LineTo(x+40, 350)
		dc.LineTo(x+52, 350)
		dc.LineTo(x+12, 550)
		dc.ClosePath()
	}
	dc.Fill()
	dc.Pop()
}
