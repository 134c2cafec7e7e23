package pipeline

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"math"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/color"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
	"github.com/juspurplan/ee371r-project/internal/ir"
	"github.com/juspurplan/ee371r-project/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modes = []transform.Mode{transform.Simulate, transform.Correct, transform.ContrastRotate}

// testImage builds a w x h gradient with no pure-black pixels.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, stdcolor.NRGBA{
				R: uint8(20 + 230*x/w),
				G: uint8(20 + 230*y/h),
				B: uint8(20 + 100*(x+y)/(w+h)),
				A: 0xff,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imagex.Write(img, &buf, imagex.PNG))
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, _, err := imagex.Read(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestRunAllModes(t *testing.T) {
	input := encodePNG(t, testImage(24, 16))
	for _, mode := range modes {
		for _, typ := range dichromacy.Types() {
			result, err := Run(input, Options{Mode: mode, Type: typ, Sensitivity: 0.5})
			require.NoError(t, err, "%v %v", mode, typ)

			// PNG signature
			require.True(t, bytes.HasPrefix(result.Data, []byte("\x89PNG\r\n\x1a\n")))
			assert.Equal(t, 24, result.SrcWidth)
			assert.Equal(t, 16, result.SrcHeight)
			assert.NotEmpty(t, result.SrcFormat)

			out := decode(t, result.Data)
			assert.Equal(t, image.Rect(0, 0, 24, 16), out.Bounds())
		}
	}
}

func TestRunSimulateFullSensitivityKeepsImage(t *testing.T) {
	src := testImage(16, 16)
	result, err := Run(encodePNG(t, src), Options{
		Mode:        transform.Simulate,
		Type:        dichromacy.Deuteranopia,
		Sensitivity: 1,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Degenerate)

	out := decode(t, result.Data)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.NRGBAAt(x, y)
			got := stdcolor.NRGBAModel.Convert(out.At(x, y)).(stdcolor.NRGBA)
			assert.InDelta(t, int(want.R), int(got.R), 1)
			assert.InDelta(t, int(want.G), int(got.G), 1)
			assert.InDelta(t, int(want.B), int(got.B), 1)
			assert.Equal(t, uint8(0xff), got.A)
		}
	}
}

func TestRunSimulateChangesBlindColors(t *testing.T) {
	// saturated red is on the protanopic blind side
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, stdcolor.NRGBA{220, 30, 30, 255})
		}
	}
	result, err := Run(encodePNG(t, img), Options{Mode: transform.Simulate, Type: dichromacy.Protanopia})
	require.NoError(t, err)
	got := stdcolor.NRGBAModel.Convert(decode(t, result.Data).At(0, 0)).(stdcolor.NRGBA)
	assert.NotEqual(t, stdcolor.NRGBA{220, 30, 30, 255}, got)
}

func TestRunValidatesBeforeDecoding(t *testing.T) {
	garbage := []byte("not an image")

	_, err := Run(garbage, Options{Mode: transform.Simulate, Type: dichromacy.Type(5), Sensitivity: 0.5})
	assert.ErrorIs(t, err, dichromacy.ErrInvalidType)

	for _, mode := range []transform.Mode{transform.Correct, transform.ContrastRotate} {
		result, err := Run(garbage, Options{Mode: mode, Type: dichromacy.Protanopia, Sensitivity: 0})
		assert.ErrorIs(t, err, transform.ErrZeroSensitivity)
		assert.Nil(t, result)
	}

	_, err = Run(garbage, Options{Mode: transform.Mode(9), Type: dichromacy.Protanopia, Sensitivity: 0.5})
	assert.ErrorIs(t, err, transform.ErrInvalidMode)

	result, err := Run(garbage, Options{Mode: transform.Simulate, Type: dichromacy.Protanopia, Sensitivity: math.NaN()})
	assert.ErrorIs(t, err, transform.ErrInvalidSensitivity)
	assert.Nil(t, result)
}

func TestRunDecodeError(t *testing.T) {
	_, err := Run([]byte("not an image"), Options{Mode: transform.Correct, Type: dichromacy.Tritanopia, Sensitivity: 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestApplyPreservesLuminance(t *testing.T) {
	for _, mode := range modes {
		for _, typ := range dichromacy.Types() {
			xyy := color.Decompose(testImage(32, 20))
			before := make([]uint64, len(xyy.Lum))
			for i, v := range xyy.Lum {
				before[i] = math.Float64bits(v)
			}

			fn, err := transform.New(mode, typ, 0.3)
			require.NoError(t, err)
			Apply(xyy, fn)

			for i, v := range xyy.Lum {
				if before[i] != math.Float64bits(v) {
					t.Fatalf("%v %v: luminance of pixel %d changed", mode, typ, i)
				}
			}
		}
	}
}

func TestApplyMatchesSequential(t *testing.T) {
	fn, err := transform.New(transform.ContrastRotate, dichromacy.Protanopia, 0.4)
	require.NoError(t, err)

	xyy := color.Decompose(testImage(64, 48))
	want := make([]chroma.Point, len(xyy.X))
	for i := range want {
		want[i], _ = fn(xyy.Chroma(i))
	}

	Apply(xyy, fn)
	for i := range want {
		assert.Equal(t, want[i], xyy.Chroma(i))
	}
}

func TestApplyCountsDegeneratePixels(t *testing.T) {
	prot := dichromacy.MustLookup(dichromacy.Protanopia)
	im := ir.NewXYYImage(3, 1)
	im.SetChroma(0, chroma.Point{X: 0.4, Y: 0.4})
	im.SetChroma(1, prot.Copunctal)
	im.SetChroma(2, chroma.Point{X: 0.2, Y: 0.2})

	fn, err := transform.New(transform.Simulate, dichromacy.Protanopia, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, Apply(im, fn))
	assert.Equal(t, prot.Copunctal, im.Chroma(1))
	assert.NotEqual(t, chroma.Point{X: 0.4, Y: 0.4}, im.Chroma(0))
}

func TestApplyEmptyImage(t *testing.T) {
	fn, err := transform.New(transform.Simulate, dichromacy.Tritanopia, 0.5)
	require.NoError(t, err)
	assert.Zero(t, Apply(ir.NewXYYImage(0, 0), fn))
}
