// Package bigcount renders short strings, usually the live word count, as
// large block art using half-block characters.
package bigcount

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	faceSize  = 64
	padding   = 4
	threshold = 40
)

var (
	faceOnce sync.Once
	face     font.Face
)

// loadFace parses the embedded Go font. Go Regular ships with x/image so no
// system font lookup is needed.
func loadFace() font.Face {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		face, _ = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    faceSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face
}

// Available reports whether the embedded font could be loaded.
func Available() bool {
	return loadFace() != nil
}

// Render draws text into a cols x rows block of half-block characters (▀▄█).
// The glyphs are scaled to fit while keeping their aspect ratio roughly
// square on a terminal whose cells are twice as tall as wide.
func Render(text string, cols, rows int) string {
	f := loadFace()
	if text == "" || f == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	metrics := f.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(f, text).Ceil()

	srcWidth := width + padding*2
	srcHeight := height + padding*2

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(text)

	// Fit the source into the block without stretching.
	targetWidth, targetHeight := fit(srcWidth, srcHeight, cols, rows*2)
	scaled := scaleDown(src, targetWidth, targetHeight)

	return toHalfBlocks(scaled, cols, rows)
}

// fit returns the largest w x h inside maxW x maxH with the aspect ratio of
// srcW x srcH.
func fit(srcW, srcH, maxW, maxH int) (int, int) {
	w := maxW
	h := srcH * maxW / srcW
	if h > maxH {
		h = maxH
		w = srcW * maxH / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			// Upscaling maps several destination pixels onto one source pixel.
			if sx2 <= sx1 {
				sx2 = sx1 + 1
			}
			if sy2 <= sy1 {
				sy2 = sy1 + 1
			}

			var sum, count int
			for sy := sy1; sy < sy2 && sy < srcHeight; sy++ {
				for sx := sx1; sx < sx2 && sx < srcWidth; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// toHalfBlocks converts a grayscale image to half-block art. Pixels outside
// the image are blank so the block always has exactly cols x rows cells.
func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// cacheSize bounds Cached; the oldest render is evicted first.
const cacheSize = 32

var (
	cacheMu   sync.Mutex
	cache     = make(map[string]string, cacheSize)
	cacheKeys []string
)

// Cached returns a previously rendered block or renders a new one.
func Cached(text string, cols, rows int) string {
	key := fmt.Sprintf("%s/%d/%d", text, cols, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[key]; ok {
		return s
	}
	s := Render(text, cols, rows)
	if len(cacheKeys) >= cacheSize {
		delete(cache, cacheKeys[0])
		cacheKeys = cacheKeys[1:]
	}
	cache[key] = s
	cacheKeys = append(cacheKeys, key)
	return s
}
