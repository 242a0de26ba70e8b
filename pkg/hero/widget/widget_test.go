package widget_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-hero/pkg/hero"
	"github.com/tendant/simple-hero/pkg/hero/choices/memory"
	"github.com/tendant/simple-hero/pkg/hero/widget"
)

var testURLs = hero.NewAssetURLs("http://testserver/static/")

func TestGradientChoiceWidget_Options(t *testing.T) {
	w := widget.NewGradientChoiceWidget()

	options, err := w.Options(context.Background(), "gradient_color", "#068989")
	require.NoError(t, err)
	require.Len(t, options, len(hero.GradientChoices))

	want := widget.Option{
		Name:    "gradient_color",
		Value:   "#068989",
		Label:   "GREEN70",
		Index:   1,
		ID:      "id_gradient_color_1",
		Checked: true,
		Attrs: map[string]string{
			"gradient_start_color": "#20123A",
			"gradient_end_color":   "#068989",
		},
	}
	if diff := cmp.Diff(want, options[1]); diff != "" {
		t.Fatalf("option mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, options[0].Checked)
}

func TestGradientChoiceWidget_Render(t *testing.T) {
	out, err := widget.NewGradientChoiceWidget().Render(context.Background(), "gradient_color", "#054096")
	require.NoError(t, err)

	assert.Contains(t, out, `id="id_gradient_color"`)
	assert.Contains(t, out, `linear-gradient(to right, #20123A, #054096)`)
	assert.Contains(t, out, `value="#054096" id="id_gradient_color_0" checked>`)
	assert.Contains(t, out, `value="#582ACB" id="id_gradient_color_4">`)
	assert.Contains(t, out, "VIOLET70")
}

func TestImageChoiceWidget_Render(t *testing.T) {
	w := widget.NewImageChoiceWidget(memory.New("foo.png", "bar.png"), testURLs)

	out, err := w.Render(context.Background(), "image", "bar.png")
	require.NoError(t, err)

	assert.Contains(t, out, `<img src="http://testserver/static/img/hero/featured/foo.png"`)
	assert.Contains(t, out, `value="bar.png" id="id_image_1" checked>`)
	assert.NotContains(t, out, `id="id_image_0" checked`)
}

func TestImageChoiceWidget_Escapes(t *testing.T) {
	w := widget.NewImageChoiceWidget(memory.New(`"><script>x</script>.png`), testURLs)

	out, err := w.Render(context.Background(), "image", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestImageChoiceWidget_SourceError(t *testing.T) {
	failing := hero.ChoiceSourceFunc(func(ctx context.Context) ([]hero.Choice, error) {
		return nil, errors.New("boom")
	})
	_, err := widget.NewImageChoiceWidget(failing, testURLs).Render(context.Background(), "image", "")
	assert.EqualError(t, err, "boom")
}

func TestIconChoiceWidget_Render(t *testing.T) {
	w := widget.NewIconChoiceWidget(memory.New("foo.svg"), testURLs)

	out, err := w.Render(context.Background(), "icon", "foo.svg")
	require.NoError(t, err)
	assert.Contains(t, out, `<img src="http://testserver/static/img/hero/icons/foo.svg"`)
	assert.Contains(t, out, `id="id_icon_0" checked>`)
}

func TestIconChoiceWidget_InlineSVG(t *testing.T) {
	icons := fstest.MapFS{
		"star.svg":   {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><script>alert(1)</script><path d="M0 0L10 10"/></svg>`)},
		"broken.svg": {Data: []byte(`<script>alert(1)</script>`)},
	}
	w := widget.NewIconChoiceWidget(memory.New("star.svg", "broken.svg", "missing.svg"), testURLs, widget.WithInlineSVG(icons))

	options, err := w.Options(context.Background(), "icon", "")
	require.NoError(t, err)
	require.Len(t, options, 3)

	assert.Contains(t, options[0].SVG, `<path d="M0 0L10 10"`)
	assert.NotContains(t, options[0].SVG, "script")
	assert.NotContains(t, options[0].SVG, "onload")
	assert.Empty(t, options[1].SVG)
	assert.Empty(t, options[2].SVG)

	out, err := w.Render(context.Background(), "icon", "")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="icon" title="star.svg"><svg`)
	assert.Contains(t, out, `<img src="http://testserver/static/img/hero/icons/missing.svg"`)
	assert.NotContains(t, out, "<script>")
}

func TestIconChoiceWidget_InlineSVGContainers(t *testing.T) {
	icons := fstest.MapFS{
		"gradient.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">` +
			`<title>Gradient</title><desc>Filled square</desc>` +
			`<defs><linearGradient id="fade"><stop offset="0"/></linearGradient></defs>` +
			`<g><rect width="10" height="10"/></g></svg>`)},
	}
	w := widget.NewIconChoiceWidget(memory.New("gradient.svg"), testURLs, widget.WithInlineSVG(icons))

	options, err := w.Options(context.Background(), "icon", "")
	require.NoError(t, err)
	require.Len(t, options, 1)

	svg := options[0].SVG
	assert.Contains(t, svg, "<title>Gradient</title>")
	assert.Contains(t, svg, "<desc>Filled square</desc>")
	assert.Contains(t, svg, "<defs>")
	assert.Contains(t, svg, "</defs>")
	assert.Contains(t, svg, `<g><rect width="10" height="10"`)
}
