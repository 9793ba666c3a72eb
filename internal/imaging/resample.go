package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// MaxDimension is the largest width or height a resample may request or
// produce.
const MaxDimension = 10000

// resampleFunc produces a new image from img and the method arguments.
type resampleFunc func(img image.Image, args []interface{}) (image.Image, error)

// methods maps resample method names to their implementation. Names follow
// the CMS image API responsive sets were first written against, so existing
// set configuration keeps working.
var methods = map[string]resampleFunc{
	"ScaleWidth":     scaleWidth,
	"ScaleHeight":    scaleHeight,
	"ScaleMaxWidth":  scaleMaxWidth,
	"ScaleMaxHeight": scaleMaxHeight,
	"Fit":            fit,
	"FitMax":         fitMax,
	"Fill":           fill,
	"Pad":            pad,
	"ResizedImage":   resized,
	"CropWidth":      cropWidth,
	"CropHeight":     cropHeight,
}

// Methods returns the supported resample method names, sorted.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func scaleWidth(img image.Image, args []interface{}) (image.Image, error) {
	w, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	if err := checkScaled(img.Bounds().Dy(), w[0], img.Bounds().Dx()); err != nil {
		return nil, err
	}
	return imaging.Resize(img, w[0], 0, imaging.Lanczos), nil
}

func scaleHeight(img image.Image, args []interface{}) (image.Image, error) {
	h, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	if err := checkScaled(img.Bounds().Dx(), h[0], img.Bounds().Dy()); err != nil {
		return nil, err
	}
	return imaging.Resize(img, 0, h[0], imaging.Lanczos), nil
}

func scaleMaxWidth(img image.Image, args []interface{}) (image.Image, error) {
	w, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() <= w[0] {
		return img, nil
	}
	return imaging.Resize(img, w[0], 0, imaging.Lanczos), nil
}

func scaleMaxHeight(img image.Image, args []interface{}) (image.Image, error) {
	h, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dy() <= h[0] {
		return img, nil
	}
	return imaging.Resize(img, 0, h[0], imaging.Lanczos), nil
}

// fit scales the image to fit within width x height, upscaling if needed.
func fit(img image.Image, args []interface{}) (image.Image, error) {
	wh, err := intArgs(args, 2)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	ratio := math.Min(float64(wh[0])/float64(b.Dx()), float64(wh[1])/float64(b.Dy()))
	w := int(math.Round(float64(b.Dx()) * ratio))
	h := int(math.Round(float64(b.Dy()) * ratio))
	return imaging.Resize(img, max(w, 1), max(h, 1), imaging.Lanczos), nil
}

// fitMax is fit without upscaling.
func fitMax(img image.Image, args []interface{}) (image.Image, error) {
	wh, err := intArgs(args, 2)
	if err != nil {
		return nil, err
	}
	return imaging.Fit(img, wh[0], wh[1], imaging.Lanczos), nil
}

func fill(img image.Image, args []interface{}) (image.Image, error) {
	wh, err := intArgs(args, 2)
	if err != nil {
		return nil, err
	}
	return imaging.Fill(img, wh[0], wh[1], imaging.Center, imaging.Lanczos), nil
}

// pad fits the image inside width x height and centres it on a background,
// white unless a hex colour is given as third argument.
func pad(img image.Image, args []interface{}) (image.Image, error) {
	wh, err := intArgs(args, 2)
	if err != nil {
		return nil, err
	}

	var bg color.Color = color.White
	if len(args) > 2 {
		hex, ok := args[2].(string)
		if !ok {
			return nil, fmt.Errorf("background colour must be a hex string, got %T", args[2])
		}
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid background colour %q: %w", hex, err)
		}
		bg = c
	}

	fitted, err := fit(img, args[:2])
	if err != nil {
		return nil, err
	}
	canvas := imaging.New(wh[0], wh[1], bg)
	return imaging.PasteCenter(canvas, fitted), nil
}

// resized stretches the image to exactly width x height.
func resized(img image.Image, args []interface{}) (image.Image, error) {
	wh, err := intArgs(args, 2)
	if err != nil {
		return nil, err
	}
	return transform.Resize(img, wh[0], wh[1], transform.Linear), nil
}

// cropWidth keeps the centre width pixels, leaving the height alone.
func cropWidth(img image.Image, args []interface{}) (image.Image, error) {
	w, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if w[0] >= b.Dx() {
		return img, nil
	}
	x := b.Min.X + (b.Dx()-w[0])/2
	return transform.Crop(img, image.Rect(x, b.Min.Y, x+w[0], b.Max.Y)), nil
}

// cropHeight keeps the centre height pixels, leaving the width alone.
func cropHeight(img image.Image, args []interface{}) (image.Image, error) {
	h, err := intArgs(args, 1)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if h[0] >= b.Dy() {
		return img, nil
	}
	y := b.Min.Y + (b.Dy()-h[0])/2
	return transform.Crop(img, image.Rect(b.Min.X, y, b.Max.X, y+h[0])), nil
}

// intArgs converts the first n arguments to positive integers. Extra
// arguments are ignored, so the global default dimensions work with single
// dimension methods such as ScaleWidth.
func intArgs(args []interface{}, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args[:n] {
		n, err := toInt(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("argument %d: dimension must be positive, got %d", i, n)
		}
		if n > MaxDimension {
			return nil, fmt.Errorf("argument %d: dimension %d exceeds %d", i, n, MaxDimension)
		}
		out[i] = n
	}
	return out, nil
}

// checkScaled fails when scaling one side to target would push the other
// side, currently other pixels long, past MaxDimension.
func checkScaled(other, target, side int) error {
	if side == 0 {
		return nil
	}
	if scaled := int64(other) * int64(target) / int64(side); scaled > MaxDimension {
		return fmt.Errorf("result side of %d pixels exceeds %d", scaled, MaxDimension)
	}
	return nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected a whole number, got %v", n)
		}
		if math.Abs(n) > math.MaxInt32 {
			return 0, fmt.Errorf("number %v out of range", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
