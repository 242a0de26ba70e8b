// Package widget renders hero choice fields as radio selects. Every option
// is rendered with its own template so it can carry a preview of the value.
package widget

import (
	"context"
	"embed"
	"fmt"
	iofs "io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/tendant/simple-hero/pkg/hero"
)

//go:embed templates/*.html
var templateFiles embed.FS

const radioTemplate = "radio.html"

var (
	templateSetOnce sync.Once
	templateSet     *pongo2.TemplateSet
	templateSetErr  error
)

func templates() (*pongo2.TemplateSet, error) {
	templateSetOnce.Do(func() {
		sub, err := iofs.Sub(templateFiles, "templates")
		if err != nil {
			templateSetErr = fmt.Errorf("widget: open templates: %w", err)
			return
		}
		templateSet = pongo2.NewSet("hero-widgets", pongo2.NewFSLoader(sub))
	})
	return templateSet, templateSetErr
}

// Renderer renders a choice field with the current value selected
type Renderer interface {
	Render(ctx context.Context, name, value string) (string, error)
}

// Option is a single rendered choice
type Option struct {
	Name    string
	Value   string
	Label   string
	Index   int
	ID      string
	Checked bool
	Attrs   map[string]string
	SVG     string
}

func (o Option) context() pongo2.Context {
	return pongo2.Context{
		"name":    o.Name,
		"value":   o.Value,
		"label":   o.Label,
		"index":   o.Index,
		"id":      o.ID,
		"checked": o.Checked,
		"attrs":   o.Attrs,
		"svg":     o.SVG,
	}
}

// RadioSelect renders the choices of a source as radio inputs
type RadioSelect struct {
	source         hero.ChoiceSource
	optionTemplate string
	class          string
	attrs          func(hero.Choice) map[string]string
	inline         iofs.FS
}

var _ Renderer = (*RadioSelect)(nil)

// NewGradientChoiceWidget renders the gradient palette, previewing each
// color as the end stop of the shelf gradient
func NewGradientChoiceWidget() *RadioSelect {
	return &RadioSelect{
		source: hero.ChoiceSourceFunc(func(ctx context.Context) ([]hero.Choice, error) {
			return hero.GradientChoices, nil
		}),
		optionTemplate: "gradient_option.html",
		class:          "gradient-choices",
		attrs: func(c hero.Choice) map[string]string {
			return map[string]string{
				"gradient_start_color": hero.GradientStartColor,
				"gradient_end_color":   c.Value,
			}
		},
	}
}

// NewImageChoiceWidget renders featured image choices with a thumbnail
func NewImageChoiceWidget(source hero.ChoiceSource, urls hero.AssetURLs) *RadioSelect {
	return &RadioSelect{
		source:         source,
		optionTemplate: "image_option.html",
		class:          "image-choices",
		attrs:          imageURLAttrs(urls.FeaturedImageBase),
	}
}

// IconOption configures an icon widget
type IconOption func(*RadioSelect)

// WithInlineSVG embeds .svg icons read from fsys in the markup instead of
// linking them. The markup is sanitized first.
func WithInlineSVG(fsys iofs.FS) IconOption {
	return func(w *RadioSelect) {
		w.inline = fsys
	}
}

// NewIconChoiceWidget renders module icon choices
func NewIconChoiceWidget(source hero.ChoiceSource, urls hero.AssetURLs, opts ...IconOption) *RadioSelect {
	w := &RadioSelect{
		source:         source,
		optionTemplate: "icon_option.html",
		class:          "icon-choices",
		attrs:          imageURLAttrs(urls.ModuleIconBase),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func imageURLAttrs(base string) func(hero.Choice) map[string]string {
	return func(c hero.Choice) map[string]string {
		return map[string]string{"image_url": base + c.Value}
	}
}

// Options lists the choices of the widget for a field, marking the one
// equal to value as checked
func (w *RadioSelect) Options(ctx context.Context, name, value string) ([]Option, error) {
	choices, err := w.source.Choices(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(choices))
	for i, c := range choices {
		opt := Option{
			Name:    name,
			Value:   c.Value,
			Label:   c.Label,
			Index:   i,
			ID:      fmt.Sprintf("id_%s_%d", name, i),
			Checked: c.Value == value,
			Attrs:   w.attrs(c),
		}
		if w.inline != nil && strings.HasSuffix(strings.ToLower(c.Value), ".svg") {
			opt.SVG = inlineSVG(w.inline, c.Value)
		}
		options = append(options, opt)
	}
	return options, nil
}

// Render renders the widget as HTML
func (w *RadioSelect) Render(ctx context.Context, name, value string) (string, error) {
	set, err := templates()
	if err != nil {
		return "", err
	}

	options, err := w.Options(ctx, name, value)
	if err != nil {
		return "", err
	}

	optionTpl, err := set.FromCache(w.optionTemplate)
	if err != nil {
		return "", fmt.Errorf("widget: load %s: %w", w.optionTemplate, err)
	}

	rendered := make([]string, 0, len(options))
	for _, opt := range options {
		out, err := optionTpl.Execute(pongo2.Context{"option": opt.context()})
		if err != nil {
			return "", fmt.Errorf("widget: render option %s: %w", opt.ID, err)
		}
		rendered = append(rendered, strings.TrimSpace(out))
	}

	radioTpl, err := set.FromCache(radioTemplate)
	if err != nil {
		return "", fmt.Errorf("widget: load %s: %w", radioTemplate, err)
	}
	out, err := radioTpl.Execute(pongo2.Context{
		"name":    name,
		"class":   w.class,
		"options": rendered,
	})
	if err != nil {
		return "", fmt.Errorf("widget: render %s: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}
