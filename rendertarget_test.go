package g3d

import (
	"errors"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
)

func newTarget(t testing.TB, w, h int) *RenderTarget {
	t.Helper()
	rt, err := NewRenderTarget(w, h)
	if err != nil {
		t.Fatalf("NewRenderTarget(%d, %d): %v", w, h, err)
	}
	return rt
}

func TestNewRenderTarget(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid", 100, 50, false},
		{"single pixel", 1, 1, false},
		{"zero width", 0, 10, true},
		{"zero height", 10, 0, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRenderTarget(tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("err = %v, want ErrInvalidSize", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if rt.Width() != tt.w || rt.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", rt.Width(), rt.Height(), tt.w, tt.h)
			}
			if len(rt.Pixels()) != tt.w*tt.h*4 {
				t.Errorf("len(Pixels) = %d, want %d", len(rt.Pixels()), tt.w*tt.h*4)
			}
		})
	}
}

func TestRenderTarget_ClearResetsDepth(t *testing.T) {
	rt := newTarget(t, 7, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if !math.IsInf(rt.DepthAt(x, y), 1) {
				t.Fatalf("DepthAt(%d, %d) = %v after creation, want +Inf", x, y, rt.DepthAt(x, y))
			}
		}
	}

	rt.PlotAtDepth(3, 2, 4, White)
	rt.Clear()
	if !math.IsInf(rt.DepthAt(3, 2), 1) {
		t.Errorf("DepthAt after Clear = %v, want +Inf", rt.DepthAt(3, 2))
	}
	for i, b := range rt.Pixels() {
		if b != 0 {
			t.Fatalf("Pixels()[%d] = %d after Clear, want 0", i, b)
		}
	}
}

func TestRenderTarget_DepthTest(t *testing.T) {
	rt := newTarget(t, 2, 2)
	if rt.DepthTest(0, 0, 1e300) {
		t.Error("first fragment rejected on a cleared target")
	}

	rt.PlotAtDepth(0, 0, 5, White)
	tests := []struct {
		depth  float64
		reject bool
	}{
		{4, false},
		{5, false},
		{6, true},
	}
	for _, tt := range tests {
		if got := rt.DepthTest(0, 0, tt.depth); got != tt.reject {
			t.Errorf("DepthTest(depth=%v) = %v, want %v", tt.depth, got, tt.reject)
		}
	}
	if rt.DepthAt(0, 0) != 5 {
		t.Errorf("DepthTest modified the depth buffer: %v", rt.DepthAt(0, 0))
	}
}

func TestRenderTarget_StoredDepthNeverIncreases(t *testing.T) {
	rt := newTarget(t, 1, 1)
	depths := []float64{9, 3, 7, 2, 2, 8, 1}
	last := math.Inf(1)
	for _, d := range depths {
		if !rt.DepthTest(0, 0, d) {
			rt.PlotAtDepth(0, 0, d, White)
		}
		if got := rt.DepthAt(0, 0); got > last {
			t.Fatalf("stored depth rose from %v to %v", last, got)
		}
		last = rt.DepthAt(0, 0)
	}
	if last != 1 {
		t.Errorf("final depth = %v, want 1", last)
	}
}

func TestRenderTarget_PixelLayout(t *testing.T) {
	rt := newTarget(t, 4, 3)
	rt.PlotAtDepth(2, 1, 1, RGB{R: 1, G: 0.5, B: 0})

	i := (1*4 + 2) * 4
	got := rt.Pixels()[i : i+4]
	want := []uint8{255, 128, 0, 255}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("pixel bytes = %v, want %v", got, want)
		}
	}

	if c := rt.At(2, 1); c != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("At(2, 1) = %v", c)
	}
	if c := rt.At(-1, 0); c != (color.RGBA{}) {
		t.Errorf("At out of bounds = %v, want zero", c)
	}
	if c := rt.RGBA().RGBAAt(2, 1); c.R != 255 || c.A != 255 {
		t.Errorf("RGBA view does not share the buffer: %v", c)
	}
}

func TestRenderTarget_ToImageCopies(t *testing.T) {
	rt := newTarget(t, 2, 2)
	img := rt.ToImage()
	rt.PlotAtDepth(0, 0, 1, White)
	if img.Pix[0] != 0 {
		t.Error("ToImage shares the color buffer")
	}
}

func TestRenderTarget_GPUDescriptors(t *testing.T) {
	rt := newTarget(t, 320, 200)
	if rt.ColorFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("ColorFormat = %v", rt.ColorFormat())
	}
	want := gputypes.Extent3D{Width: 320, Height: 200, DepthOrArrayLayers: 1}
	if rt.Extent() != want {
		t.Errorf("Extent = %+v, want %+v", rt.Extent(), want)
	}
}

func TestRenderTarget_SavePNG(t *testing.T) {
	rt := newTarget(t, 3, 2)
	rt.PlotAtDepth(1, 1, 1, RGB{R: 0, G: 1, B: 0})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := rt.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("decoded pixel = %v %v %v %v", r, g, b, a)
	}
}
