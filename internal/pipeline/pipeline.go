package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/parallel"
	"github.com/golang/glog"
	"github.com/juspurplan/ee371r-project/internal/color"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
	"github.com/juspurplan/ee371r-project/internal/ir"
	"github.com/juspurplan/ee371r-project/internal/transform"
)

// Options controls a full decode → transform → encode run.
type Options struct {
	Mode        transform.Mode
	Type        dichromacy.Type
	Sensitivity float64 // clamped to [0, 1]
}

// Result holds the output of a pipeline run.
type Result struct {
	Data       []byte // encoded PNG
	SrcWidth   int
	SrcHeight  int
	SrcFormat  string
	Degenerate int // pixels passed through because their geometry was degenerate
}

// Run validates opts, then decodes the image, applies the selected pixel
// policy to every pixel's chromaticity while keeping its luminance, and
// encodes the result as PNG. Nothing is decoded when validation fails.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Validate once for the whole image
	fn, err := transform.New(opts.Mode, opts.Type, opts.Sensitivity)
	if err != nil {
		return nil, err
	}

	// 2. Decode and convert RGB → xyY
	xyy, format, err := Decode(data)
	if err != nil {
		return nil, err
	}

	// 3. Chromaticity transform
	start := time.Now()
	degenerate := Apply(xyy, fn)
	glog.V(1).Infof("%v/%v applied to %d pixels in %v", opts.Mode, opts.Type, xyy.Width*xyy.Height, time.Since(start))
	if degenerate > 0 {
		glog.Warningf("%d pixels had degenerate confusion-line geometry and were left unchanged", degenerate)
	}

	// 4. xyY → RGB
	out, err := color.Compose(xyy)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	// 5. Encode PNG
	var buf bytes.Buffer
	if err := imagex.Write(out, &buf, imagex.PNG); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:       buf.Bytes(),
		SrcWidth:   xyy.Width,
		SrcHeight:  xyy.Height,
		SrcFormat:  format,
		Degenerate: degenerate,
	}, nil
}

// Decode decodes png, jpeg, gif, tiff, bmp or webp data into xyY planes
// and reports the detected format.
func Decode(data []byte) (*ir.XYYImage, string, error) {
	start := time.Now()
	img, format, err := imagex.Read(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	xyy := color.Decompose(img)
	glog.V(1).Infof("decoded %v %dx%d in %v", format, xyy.Width, xyy.Height, time.Since(start))
	return xyy, strings.ToLower(format.String()), nil
}

// Apply replaces every pixel's chromaticity with fn's result, rows in
// parallel. Lum is never written. It returns the number of pixels fn
// reported as degenerate; those keep their input chromaticity.
func Apply(im *ir.XYYImage, fn transform.Func) int {
	var degenerate atomic.Int64
	parallel.Line(im.Height, func(start, end int) {
		var n int64
		for i := start * im.Width; i < end*im.Width; i++ {
			p, ok := fn(im.Chroma(i))
			if !ok {
				n++
			}
			im.SetChroma(i, p)
		}
		degenerate.Add(n)
	})
	return int(degenerate.Load())
}
