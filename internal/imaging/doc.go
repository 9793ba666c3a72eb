// Package imaging provides the image resources responsive sets resample.
//
// A Resource wraps a decoded image.Image and implements
// responsive.ImageResource: given a method name and an argument list it
// returns a new, resampled Resource. Supported methods:
//
//   - ScaleWidth(w), ScaleHeight(h): scale proportionally to one dimension
//   - ScaleMaxWidth(w), ScaleMaxHeight(h): as above, never upscaling
//   - Fit(w, h): scale proportionally to fit inside w x h
//   - FitMax(w, h): Fit without upscaling
//   - Fill(w, h): scale and centre-crop to exactly w x h
//   - Pad(w, h[, colour]): Fit, then centre on a w x h background (default white)
//   - ResizedImage(w, h): stretch to exactly w x h
//   - CropWidth(w), CropHeight(h): centre-crop one dimension
//
// All dimensions are positive integers. Numeric strings are accepted.
// Arguments beyond those a method reads are ignored, so ScaleWidth(800, 600)
// scales to 800 pixels wide.
//
// # Variant Names
//
// Each variant is named after its original plus method and arguments, so
// "hero.jpg" resampled with Fill(800, 600) is "hero-Fill-800x600.jpg". The
// name is stable and suits use as a storage key.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Resources are immutable and
// can be resampled concurrently.
package imaging
