package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Image is a row-major RGB8 pixel buffer, 3 bytes per pixel. It implements image.Image
// so the standard encoders can consume it directly.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * 3
}

// Pixel returns the RGB bytes at (x, y); y=0 is the top row
func (img *Image) Pixel(x, y int) [3]uint8 {
	o := img.offset(x, y)
	return [3]uint8{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}
}

// SetPixel stores RGB bytes at (x, y)
func (img *Image) SetPixel(x, y int, rgb [3]uint8) {
	o := img.offset(x, y)
	img.Pix[o], img.Pix[o+1], img.Pix[o+2] = rgb[0], rgb[1], rgb[2]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	p := img.Pixel(x, y)
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 255}
}

// ToRGBA copies the buffer into an opaque *image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixel(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return out
}

// vec3ToRGB converts a linear color to 8-bit with gamma 2 correction and clamping
func vec3ToRGB(colorVec core.Vec3) [3]uint8 {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)
	return [3]uint8{
		uint8(255 * colorVec.X),
		uint8(255 * colorVec.Y),
		uint8(255 * colorVec.Z),
	}
}
