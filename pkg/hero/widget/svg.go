package widget

import (
	iofs "io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// inlineSVG reads and sanitizes an icon. It returns an empty string when the
// file cannot be read or nothing survives sanitizing, so the option falls
// back to an <img> tag.
func inlineSVG(fsys iofs.FS, name string) string {
	raw, err := iofs.ReadFile(fsys, name)
	if err != nil {
		return ""
	}
	return sanitizeSVG(string(raw))
}

func sanitizeSVG(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "linearGradient", "stop",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "g"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height", "fill", "fill-rule", "clip-rule",
				"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
				"opacity", "transform", "class",
			).OnElements(el)
		}

		// Containers are dropped unless they may appear without attributes.
		policy.AllowNoAttrs().OnElements("defs", "g", "title", "desc")

		policy.AllowAttrs("id", "x1", "y1", "x2", "y2", "gradientUnits").OnElements("linearGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")

		svgPolicy = policy
	})
	return svgPolicy
}
