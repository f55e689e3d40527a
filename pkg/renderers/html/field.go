package html

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

type fieldRenderer struct {
	theme     rendererTheme
	sanitizer *bluemonday.Policy
	errors    map[string][]string
}

func newFieldRenderer(theme rendererTheme, sanitizer *bluemonday.Policy, errors map[string][]string) *fieldRenderer {
	return &fieldRenderer{theme: theme, sanitizer: sanitizer, errors: errors}
}

// render walks the node tree and returns the form fragment markup.
func (r *fieldRenderer) render(node *emit.Node) (string, error) {
	if node == nil {
		return "", nil
	}

	var builder strings.Builder
	if err := r.renderNode(&builder, node); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (r *fieldRenderer) renderNode(builder *strings.Builder, node *emit.Node) error {
	switch node.Kind {
	case emit.KindText:
		builder.WriteString(html.EscapeString(node.Text))
		return nil
	case emit.KindElement:
		if node.Name == "fieldset" && node.Field != "" {
			return r.renderRadioGroup(builder, node)
		}
		return r.renderElement(builder, node)
	case emit.KindWidget:
		return r.renderWidget(builder, node)
	default:
		return fmt.Errorf("unknown node kind %d", node.Kind)
	}
}

func (r *fieldRenderer) renderElement(builder *strings.Builder, node *emit.Node) error {
	builder.WriteString("<")
	builder.WriteString(node.Name)
	builder.WriteString(">")
	for _, child := range node.Children {
		if err := r.renderNode(builder, child); err != nil {
			return err
		}
	}
	builder.WriteString("</")
	builder.WriteString(node.Name)
	builder.WriteString(">")
	return nil
}

func (r *fieldRenderer) renderWidget(builder *strings.Builder, node *emit.Node) error {
	control, err := r.controlMarkup(node)
	if err != nil {
		return err
	}

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(r.theme.token("field", "fw-field")))
	if cls := node.StringAttr("CSSClass"); cls != "" {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(cls))
	}
	builder.WriteString(`" data-widget="`)
	builder.WriteString(html.EscapeString(node.Name))
	builder.WriteString(`">`)

	position := node.StringAttr("LabelPosition")
	if position == "" && node.Name == widgets.WidgetCheckbox {
		position = "right"
	}

	label := r.labelMarkup(node)
	if position == "right" {
		builder.WriteString(control)
		builder.WriteString(label)
	} else {
		builder.WriteString(label)
		builder.WriteString(control)
	}

	r.writeDescription(builder, node)
	r.writeErrors(builder, node.Field)
	builder.WriteString(`</div>`)
	return nil
}

// renderRadioGroup emits the fieldset a radio group annotation resolved to:
// the legend child first, then one labelled radio input per sub-widget.
func (r *fieldRenderer) renderRadioGroup(builder *strings.Builder, node *emit.Node) error {
	builder.WriteString(`<fieldset class="`)
	builder.WriteString(html.EscapeString(r.theme.token("field", "fw-field")))
	builder.WriteString(`" data-widget="radiogroup"`)
	if layout := node.StringAttr("Layout"); layout != "" {
		builder.WriteString(` data-layout="`)
		builder.WriteString(html.EscapeString(layout))
		builder.WriteString(`"`)
	}
	if node.BoolAttr("ReadOnly") {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)

	for _, child := range node.Children {
		if child.Kind == emit.KindWidget && child.Name == widgets.WidgetRadio {
			r.writeRadio(builder, child)
			continue
		}
		if err := r.renderNode(builder, child); err != nil {
			return err
		}
	}

	r.writeDescription(builder, node)
	r.writeErrors(builder, node.Field)
	builder.WriteString(`</fieldset>`)
	return nil
}

func (r *fieldRenderer) writeRadio(builder *strings.Builder, node *emit.Node) {
	choice := node.StringAttr(widgets.AttrValue)

	builder.WriteString(`<label class="`)
	builder.WriteString(html.EscapeString(r.theme.token("label", "fw-label")))
	builder.WriteString(`"><input type="radio" name="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`" value="`)
	builder.WriteString(html.EscapeString(choice))
	builder.WriteString(`"`)
	if node.BoolAttr(widgets.AttrChecked) {
		builder.WriteString(` checked`)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(choice))
	builder.WriteString(`</label>`)
}

func (r *fieldRenderer) labelMarkup(node *emit.Node) string {
	var builder strings.Builder
	builder.WriteString(`<label class="`)
	builder.WriteString(html.EscapeString(r.theme.token("label", "fw-label")))
	builder.WriteString(`" for="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`">`)
	label := node.Label
	if label == "" {
		label = model.DefaultLabeler(node.Field)
	}
	builder.WriteString(html.EscapeString(label))
	builder.WriteString(`</label>`)
	return builder.String()
}

func (r *fieldRenderer) writeDescription(builder *strings.Builder, node *emit.Node) {
	if node.Description == "" {
		return
	}
	builder.WriteString(`<p class="`)
	builder.WriteString(html.EscapeString(r.theme.token("help", "fw-help")))
	builder.WriteString(`">`)
	if r.sanitizer != nil {
		builder.WriteString(r.sanitizer.Sanitize(node.Description))
	} else {
		builder.WriteString(html.EscapeString(node.Description))
	}
	builder.WriteString(`</p>`)
}

func (r *fieldRenderer) writeErrors(builder *strings.Builder, field string) {
	for _, message := range r.errors[field] {
		builder.WriteString(`<p class="`)
		builder.WriteString(html.EscapeString(r.theme.token("error", "fw-error")))
		builder.WriteString(`">`)
		if r.sanitizer != nil {
			builder.WriteString(r.sanitizer.Sanitize(message))
		} else {
			builder.WriteString(html.EscapeString(message))
		}
		builder.WriteString(`</p>`)
	}
}

func (r *fieldRenderer) controlMarkup(node *emit.Node) (string, error) {
	switch node.Name {
	case widgets.WidgetTextBox:
		kind := "text"
		if node.BoolAttr("Password") {
			kind = "password"
		}
		extra := ""
		if max := node.Attr("MaxLength"); max != nil {
			extra = fmt.Sprintf(` maxlength="%v"`, max)
		}
		return r.inputMarkup(node, kind, formatValue(node), extra), nil
	case widgets.WidgetNumberBox:
		extra := ""
		if step := node.Attr("Increment"); step != nil {
			extra = fmt.Sprintf(` step="%v"`, step)
		}
		return r.inputMarkup(node, "number", formatValue(node), extra), nil
	case widgets.WidgetSlider:
		extra := fmt.Sprintf(` min="%d" max="%d" step="%d"`,
			intAttr(node, "Min", 0), intAttr(node, "Max", 100), intAttr(node, "Step", 1))
		return r.inputMarkup(node, "range", formatValue(node), extra), nil
	case widgets.WidgetDatePicker:
		return r.inputMarkup(node, "date", formatValue(node), ""), nil
	case widgets.WidgetTimePicker:
		return r.inputMarkup(node, "time", formatValue(node), ""), nil
	case widgets.WidgetCheckbox:
		extra := ""
		if node.BoolAttr(widgets.AttrChecked) {
			extra = " checked"
		}
		return r.inputMarkup(node, "checkbox", "", extra), nil
	case widgets.WidgetColorPicker:
		return r.inputMarkup(node, "color", formatValue(node), ""), nil
	case widgets.WidgetComboBox:
		return r.selectMarkup(node), nil
	default:
		return "", fmt.Errorf("no markup for widget %q", node.Name)
	}
}

func (r *fieldRenderer) inputMarkup(node *emit.Node, kind, value, extra string) string {
	var builder strings.Builder
	builder.WriteString(`<input class="`)
	builder.WriteString(html.EscapeString(r.theme.token("input", "fw-input")))
	builder.WriteString(`" type="`)
	builder.WriteString(kind)
	builder.WriteString(`" id="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`"`)

	if value != "" {
		builder.WriteString(` value="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteString(`"`)
	}
	if placeholder := node.StringAttr("NullText"); placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(placeholder))
		builder.WriteString(`"`)
	}
	if node.BoolAttr("ReadOnly") {
		builder.WriteString(` readonly`)
	}
	builder.WriteString(extra)
	builder.WriteString(`>`)
	return builder.String()
}

func (r *fieldRenderer) selectMarkup(node *emit.Node) string {
	var builder strings.Builder
	builder.WriteString(`<select class="`)
	builder.WriteString(html.EscapeString(r.theme.token("input", "fw-input")))
	builder.WriteString(`" id="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(node.Field))
	builder.WriteString(`"`)
	if node.BoolAttr("ReadOnly") {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)

	if placeholder := node.StringAttr("NullText"); placeholder != "" {
		builder.WriteString(`<option value="" disabled>`)
		builder.WriteString(html.EscapeString(placeholder))
		builder.WriteString(`</option>`)
	}

	for _, child := range node.Children {
		if child.Name != "option" {
			continue
		}
		choice := child.StringAttr(widgets.AttrValue)
		builder.WriteString(`<option value="`)
		builder.WriteString(html.EscapeString(choice))
		builder.WriteString(`"`)
		if child.BoolAttr("Selected") {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(choice))
		builder.WriteString(`</option>`)
	}
	builder.WriteString(`</select>`)
	return builder.String()
}

// formatValue renders the bound value for the value attribute. Unset
// nullable values render empty, times use the widget's Format layout.
func formatValue(node *emit.Node) string {
	value := node.Attr(widgets.AttrValue)
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		return v.String()
	case time.Time:
		if v.IsZero() {
			return ""
		}
		layout := node.StringAttr("Format")
		if layout == "" {
			layout = "2006-01-02"
			if node.Name == widgets.WidgetTimePicker {
				layout = "15:04"
			}
		}
		return v.Format(layout)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intAttr(node *emit.Node, name string, fallback int) int {
	if value, ok := node.Attr(name).(int); ok {
		return value
	}
	return fallback
}
