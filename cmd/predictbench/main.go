// Command predictbench drives the intrapred dispatch table against
// synthetic or PNG-sourced edge buffers, reporting per-mode timing and
// optionally writing the predicted block back out as a PNG for visual
// inspection.
//
// Usage:
//
//	predictbench [options]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
	"golang.org/x/image/draw"

	"github.com/av1go/intrapred"
)

// Logging configuration for the rotating lumberjack file sink, following
// the ausocean-av command-line tools named in SPEC_FULL.md.
const (
	logPath      = "predictbench.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
)

func main() {
	mode := flag.String("mode", "DC_PRED", "prediction mode name, e.g. DC_PRED, Z1_PRED, FILTER_PRED")
	width := flag.Int("w", 8, "block width (4,8,16,32,64)")
	height := flag.Int("h", 8, "block height (4,8,16,32,64)")
	bitDepth := flag.Int("bd", 8, "bit depth (8,10,12)")
	angle := flag.Int("angle", 0, "angle word payload for Z1/Z2/Z3/FILTER_PRED")
	smooth := flag.Bool("smooth", false, "set the is-smooth-neighbor flag")
	input := flag.String("in", "", "PNG file to source edge samples from (default: synthetic ramp)")
	scale := flag.Float64("scale", 1.0, "rescale the input PNG by this factor before sampling edges (1.0=no rescale)")
	output := flag.String("out", "", "PNG file to write the predicted block to (default: none)")
	repeat := flag.Int("repeat", 1, "number of times to repeat the call for timing")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	defer fileLog.Close()
	logger := slog.New(slog.NewTextHandler(fileLog, nil))

	modeVal, ok := modeByName(*mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "predictbench: unknown mode %q\n", *mode)
		os.Exit(1)
	}

	logger.Info("run starting", "mode", *mode, "w", *width, "h", *height, "bd", *bitDepth)

	if *bitDepth == 8 {
		runBD8(logger, modeVal, *width, *height, *angle, *smooth, *input, *output, *scale, *repeat)
	} else {
		runBD16(logger, modeVal, *width, *height, *bitDepth, *angle, *smooth, *input, *output, *repeat)
	}
}

func modeByName(name string) (intrapred.Mode, bool) {
	for m := intrapred.Mode(0); int(m) < intrapred.NumModes; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

func runBD8(logger *slog.Logger, mode intrapred.Mode, w, h, angle int, smooth bool, input, output string, scale float64, repeat int) {
	var top, left []uint8
	var tl uint8
	if input != "" {
		var err error
		top, left, tl, err = loadEdgeFromPNG(input, w, h, scale)
		if err != nil {
			logger.Error("failed to load input PNG", "error", err)
			os.Exit(1)
		}
	} else {
		top, left, tl = syntheticEdge8(w, h)
	}

	edge := intrapred.NewEdgeBuf(append(append([]uint8{}, reverse8(left)...), append([]uint8{tl}, top...)...), len(left))
	dst := intrapred.Block[uint8]{Buf: make([]uint8, w*h), Off: 0, Stride: w}
	param := intrapred.NewAngleWord(angle, smooth)

	start := time.Now()
	for i := 0; i < repeat; i++ {
		intrapred.TablesBD8.Pred[mode](dst, edge, w, h, 8, param)
	}
	elapsed := time.Since(start)

	logger.Info("prediction complete", "mode", mode.String(), "elapsed", elapsed, "per_call", elapsed/time.Duration(repeat))
	fmt.Printf("%s %dx%d bd=8: %v total, %v/call\n", mode, w, h, elapsed, elapsed/time.Duration(repeat))

	if output != "" {
		if err := writeBlockPNG8(output, dst, w, h); err != nil {
			logger.Error("failed to write output PNG", "error", err)
			os.Exit(1)
		}
	}
}

func runBD16(logger *slog.Logger, mode intrapred.Mode, w, h, bitDepth, angle int, smooth bool, input, output string, repeat int) {
	top, left, tl := syntheticEdge16(w, h, bitDepth)
	_ = input // PNG sourcing for >8-bit depths is not supported by this demo path.

	edge := intrapred.NewEdgeBuf(append(append([]uint16{}, reverse16(left)...), append([]uint16{tl}, top...)...), len(left))
	dst := intrapred.Block[uint16]{Buf: make([]uint16, w*h), Off: 0, Stride: w}
	param := intrapred.NewAngleWord(angle, smooth)

	start := time.Now()
	for i := 0; i < repeat; i++ {
		intrapred.TablesBD16.Pred[mode](dst, edge, w, h, bitDepth, param)
	}
	elapsed := time.Since(start)

	logger.Info("prediction complete", "mode", mode.String(), "elapsed", elapsed, "per_call", elapsed/time.Duration(repeat))
	fmt.Printf("%s %dx%d bd=%d: %v total, %v/call\n", mode, w, h, bitDepth, elapsed, elapsed/time.Duration(repeat))

	if output != "" {
		logger.Warn("PNG output for >8-bit depth is not supported by this demo path; skipping")
	}
}

// syntheticEdge8 produces a deterministic top/left/tl triple covering the
// maximum range any predictor in this package reads (§9: "Read-past-edge").
func syntheticEdge8(w, h int) (top, left []uint8, tl uint8) {
	n := w + h + 4
	top = make([]uint8, n)
	left = make([]uint8, n)
	for i := range top {
		top[i] = uint8((i*17 + 30) % 256)
		left[i] = uint8((i*23 + 50) % 256)
	}
	return top, left, uint8(40)
}

func syntheticEdge16(w, h, bitDepth int) (top, left []uint16, tl uint16) {
	n := w + h + 4
	max := uint16(1<<uint(bitDepth)) - 1
	top = make([]uint16, n)
	left = make([]uint16, n)
	for i := range top {
		top[i] = uint16((i*97+300)%int(max+1)) & max
		left[i] = uint16((i*131+500)%int(max+1)) & max
	}
	return top, left, max / 2
}

func reverse8(v []uint8) []uint8 {
	out := make([]uint8, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

func reverse16(v []uint16) []uint16 {
	out := make([]uint16, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

// loadEdgeFromPNG reads a grayscale PNG, optionally rescales it with
// golang.org/x/image/draw's bilinear scaler, and treats its top row and
// left column as the neighbor edge for a w x h block predicted just inside
// its top-left corner.
func loadEdgeFromPNG(path string, w, h int, scale float64) (top, left []uint8, tl uint8, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, nil, 0, err
	}

	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, img.Bounds(), img, img.Bounds().Min, draw.Src)

	if scale != 1.0 {
		sb := img.Bounds()
		scaled := image.NewGray(image.Rect(0, 0, int(float64(sb.Dx())*scale), int(float64(sb.Dy())*scale)))
		draw.BiLinear.Scale(scaled, scaled.Bounds(), gray, sb, draw.Over, nil)
		gray = scaled
	}

	b := gray.Bounds()
	n := w + h + 4
	top = make([]uint8, n)
	left = make([]uint8, n)
	for i := 0; i < n; i++ {
		x := b.Min.X + 1 + i
		if x > b.Max.X-1 {
			x = b.Max.X - 1
		}
		top[i] = gray.GrayAt(x, b.Min.Y).Y

		y := b.Min.Y + 1 + i
		if y > b.Max.Y-1 {
			y = b.Max.Y - 1
		}
		left[i] = gray.GrayAt(b.Min.X, y).Y
	}
	tl = gray.GrayAt(b.Min.X, b.Min.Y).Y
	return top, left, tl, nil
}

func writeBlockPNG8(path string, dst intrapred.Block[uint8], w, h int) error {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: dst.Get(x, y)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
