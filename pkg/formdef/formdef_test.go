package formdef_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formwidgets/pkg/formdef"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

const articleDef = `
name: article
fields:
  - name: title
    type: string
    label: Headline
    required: true
    options:
      MaxLength: 140
  - name: summary
    type: string?
  - name: rating
    type: int
    widget: slider
    options:
      Min: 1
      Max: 5
    default: 3
  - name: price
    type: decimal
    default: "19.99"
  - name: published
    type: bool
    default: true
  - name: published_on
    type: time
    widget: datepicker
    default: "2024-01-15"
  - name: plan
    type: string
    widget: radiogroup
    options:
      Options: "free,pro,team"
      Label: Plan
`

func TestLoad(t *testing.T) {
	f, err := formdef.Load([]byte(articleDef))
	require.NoError(t, err)
	require.NotNil(t, f.Store)
	assert.Equal(t, "article", f.Name)
	assert.Len(t, f.Fields, 7)

	title := f.Field("title")
	require.NotNil(t, title)
	assert.Equal(t, "Headline", title.Property.Label)
	assert.True(t, title.Property.Required)
	box, ok := title.Annotation.(*widgets.TextBox)
	require.True(t, ok)
	assert.Equal(t, 140, box.MaxLength)

	summary := f.Field("summary")
	require.NotNil(t, summary)
	assert.True(t, summary.Property.Type.Nullable)
	assert.Nil(t, summary.Accessor.Read())

	rating := f.Field("rating")
	require.NotNil(t, rating)
	slider, ok := rating.Annotation.(*widgets.Slider)
	require.True(t, ok)
	assert.Equal(t, 1, slider.Min)
	assert.Equal(t, 5, slider.Max)
	assert.Equal(t, 3, rating.Accessor.Read())

	price := f.Field("price")
	require.NotNil(t, price)
	assert.Equal(t, model.KindDecimal, price.Property.Type.Kind)
	assert.True(t, decimal.RequireFromString("19.99").Equal(price.Accessor.Read().(decimal.Decimal)))

	published := f.Field("published")
	require.NotNil(t, published)
	assert.Equal(t, widgets.WidgetCheckbox, published.Annotation.Widget())
	assert.Equal(t, true, published.Accessor.Read())

	when := f.Field("published_on").Accessor.Read().(time.Time)
	assert.Equal(t, 2024, when.Year())

	plan := f.Field("plan")
	require.NotNil(t, plan)
	group, ok := plan.Annotation.(*widgets.RadioGroup)
	require.True(t, ok)
	assert.Equal(t, "free,pro,team", group.Options)
	assert.Equal(t, "Plan", group.Label)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		def  string
	}{
		{"empty document", ""},
		{"no fields", "name: x"},
		{"missing field name", "name: x\nfields:\n  - type: string"},
		{"unknown type", "name: x\nfields:\n  - name: a\n    type: blob"},
		{"unknown widget", "name: x\nfields:\n  - name: a\n    type: string\n    widget: gadget"},
		{"unknown option", "name: x\nfields:\n  - name: a\n    type: string\n    options: {Bogus: 1}"},
		{"default type mismatch", "name: x\nfields:\n  - name: a\n    type: int\n    default: hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formdef.Load([]byte(tc.def))
			assert.Error(t, err)
		})
	}
}

func TestOptionErrorsAreDeterministic(t *testing.T) {
	def := "name: x\nfields:\n  - name: a\n    type: string\n    options: {ZzBogus: 1, AaBogus: 1}"

	for i := 0; i < 10; i++ {
		_, err := formdef.Load([]byte(def))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AaBogus")
	}
}

func TestStoreBacksAccessors(t *testing.T) {
	f, err := formdef.Load([]byte(articleDef))
	require.NoError(t, err)

	require.NoError(t, f.Field("title").Accessor.Write("Breaking"))
	assert.Equal(t, "Breaking", f.Store.Get("title"))

	require.NoError(t, f.Field("summary").Accessor.Write(nil))
	assert.Nil(t, f.Field("summary").Accessor.Read())
}
