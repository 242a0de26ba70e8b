package hero

import (
	"strings"

	"golang.org/x/exp/slices"
)

// GradientStartColor is the start color of every primary shelf gradient.
const GradientStartColor = "#20123A"

// GradientChoices is the palette of gradient end colors.
var GradientChoices = []Choice{
	{Value: "#054096", Label: "BLUE70"},
	{Value: "#068989", Label: "GREEN70"},
	{Value: "#C60184", Label: "PINK70"},
	{Value: "#712290", Label: "PURPLE70"},
	{Value: "#582ACB", Label: "VIOLET70"},
}

// Asset locations relative to the static root.
const (
	FeaturedImagePath = "img/hero/featured/"
	ModuleIconPath    = "img/hero/icons/"
)

// AssetURLs holds the base URLs that stored image and icon names are
// appended to.
type AssetURLs struct {
	FeaturedImageBase string
	ModuleIconBase    string
}

// NewAssetURLs derives the featured image and module icon bases from the
// static URL, e.g. "https://cdn.example.com/static/".
func NewAssetURLs(staticURL string) AssetURLs {
	if staticURL != "" && !strings.HasSuffix(staticURL, "/") {
		staticURL += "/"
	}
	return AssetURLs{
		FeaturedImageBase: staticURL + FeaturedImagePath,
		ModuleIconBase:    staticURL + ModuleIconPath,
	}
}

// ImageURL returns the featured image URL of a primary shelf.
func (u AssetURLs) ImageURL(h *PrimaryHero) string {
	return u.FeaturedImageBase + h.Image
}

// IconURL returns the icon URL of a secondary shelf module.
func (u AssetURLs) IconURL(m *SecondaryHeroModule) string {
	return u.ModuleIconBase + m.Icon
}

// IsGradientChoice reports whether color is one of the palette values.
func IsGradientChoice(color string) bool {
	return slices.IndexFunc(GradientChoices, func(c Choice) bool {
		return c.Value == color
	}) >= 0
}
