// Package theme derives brand colours from the logo and writes them into the
// stylesheet as CSS custom properties.
package theme

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"
	"strings"
)

const (
	StartMarker = "/* Brand colors will be generated here */"
	EndMarker   = "/* End Brand colors */"
)

// DominantColors returns up to count colours of img ordered by how many
// pixels use them. Ties are ordered by RGBA value so the result is stable.
func DominantColors(img image.Image, count int) []color.RGBA {
	bounds := img.Bounds()
	counts := make(map[color.RGBA]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)]++
		}
	}

	colors := make([]color.RGBA, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		a, b := colors[i], colors[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return rgbaKey(a) < rgbaKey(b)
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

func rgbaKey(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Variables formats colours as --brand-N declarations.
func Variables(colors []color.RGBA) []string {
	vars := make([]string, 0, len(colors))
	for i, c := range colors {
		vars = append(vars, fmt.Sprintf("--brand-%d: rgb(%d, %d, %d);", i+1, c.R, c.G, c.B))
	}
	return vars
}

// Inject places vars between the brand markers of css. When only the start
// marker exists the end marker is added; when neither exists the block is
// placed at the top of the :root rule, or a new :root rule is prepended.
func Inject(css string, vars []string) string {
	block := "\n    " + strings.Join(vars, "\n    ") + "\n    "

	start := strings.Index(css, StartMarker)
	switch {
	case start >= 0 && strings.Contains(css[start:], EndMarker):
		from := start + len(StartMarker)
		to := strings.Index(css[start:], EndMarker) + start
		return css[:from] + block + css[to:]
	case start >= 0:
		return strings.Replace(css, StartMarker, StartMarker+block+EndMarker, 1)
	case strings.Contains(css, ":root {"):
		return strings.Replace(css, ":root {", ":root {\n    "+StartMarker+block+EndMarker, 1)
	default:
		return ":root {\n    " + StartMarker + block + EndMarker + "\n}\n" + css
	}
}

// Apply extracts count colours from the image at imagePath and injects them
// into the stylesheet at cssPath.
func Apply(imagePath, cssPath string, count int) ([]string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	css, err := os.ReadFile(cssPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS file: %w", err)
	}

	vars := Variables(DominantColors(img, count))
	if err := os.WriteFile(cssPath, []byte(Inject(string(css), vars)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write CSS variables to file: %w", err)
	}
	return vars, nil
}
