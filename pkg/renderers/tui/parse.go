package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

func promptMessage(node *emit.Node) string {
	if node.Label != "" {
		return node.Label
	}
	return model.DefaultLabeler(node.Field)
}

// groupMessage prefers the legend text a radio group resolved with.
func groupMessage(node *emit.Node) string {
	for _, child := range node.Children {
		if child.Kind != emit.KindElement || child.Name != "legend" {
			continue
		}
		for _, text := range child.Children {
			if text.Kind == emit.KindText && text.Text != "" {
				return text.Text
			}
		}
	}
	return model.DefaultLabeler(node.Field)
}

// displayValue formats the current bound value as the prompt default.
func displayValue(node *emit.Node) string {
	value := node.Attr(widgets.AttrValue)
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(timeLayout(node))
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func timeLayout(node *emit.Node) string {
	if layout := node.StringAttr("Format"); layout != "" {
		return layout
	}
	if node.Name == widgets.WidgetTimePicker {
		return "15:04"
	}
	return "2006-01-02"
}

// parseValidator returns a prompt validator that rejects input the scalar
// parser would fail on, so the user is re-prompted instead of aborting the
// session.
func parseValidator(node *emit.Node) func(string) error {
	return func(raw string) error {
		_, _, err := parseScalar(node, raw)
		return err
	}
}

// parseScalar converts raw prompt input into the node's declared type. Empty
// input on a nullable field yields an explicit nil write; empty input on a
// non-nullable non-string field means keep the current value.
func parseScalar(node *emit.Node, raw string) (value any, skip bool, err error) {
	typ := node.Type

	if raw == "" {
		if typ.Nullable {
			return nil, false, nil
		}
		if typ.Kind != model.KindString {
			return nil, true, nil
		}
	}

	switch typ.Kind {
	case model.KindString:
		return raw, false, nil
	case model.KindUint8:
		parsed, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a number between 0 and 255", raw)
		}
		return uint8(parsed), false, nil
	case model.KindInt:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not an integer", raw)
		}
		if err := checkRange(node, float64(parsed)); err != nil {
			return nil, false, err
		}
		return parsed, false, nil
	case model.KindInt64:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not an integer", raw)
		}
		if err := checkRange(node, float64(parsed)); err != nil {
			return nil, false, err
		}
		return parsed, false, nil
	case model.KindFloat32:
		parsed, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a number", raw)
		}
		if err := checkRange(node, parsed); err != nil {
			return nil, false, err
		}
		return float32(parsed), false, nil
	case model.KindFloat64:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a number", raw)
		}
		if err := checkRange(node, parsed); err != nil {
			return nil, false, err
		}
		return parsed, false, nil
	case model.KindDecimal:
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a decimal number", raw)
		}
		return parsed, false, nil
	case model.KindTime:
		layout := timeLayout(node)
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return nil, false, fmt.Errorf("%q does not match %s", raw, layout)
		}
		return parsed, false, nil
	default:
		return nil, false, fmt.Errorf("unsupported declared type %s", typ)
	}
}

// checkRange enforces slider bounds when the node carries them.
func checkRange(node *emit.Node, value float64) error {
	if node.Name != widgets.WidgetSlider {
		return nil
	}
	min := float64(sliderAttr(node, "Min", 0))
	max := float64(sliderAttr(node, "Max", 100))
	if value < min || value > max {
		return fmt.Errorf("%v is outside %v..%v", value, min, max)
	}
	return nil
}

func sliderAttr(node *emit.Node, name string, fallback int) int {
	if value, ok := node.Attr(name).(int); ok {
		return value
	}
	return fallback
}
