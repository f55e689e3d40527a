package emit

import (
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

func TestAppendSkipsNil(t *testing.T) {
	group := Element("fieldset")
	group.Append(nil, Text("Legend"), nil)

	if len(group.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(group.Children))
	}
	if group.Children[0].Text != "Legend" {
		t.Fatalf("unexpected child: %+v", group.Children[0])
	}
}

func TestAttrHelpers(t *testing.T) {
	node := Widget("textbox", "title", model.DeclaredType{Kind: model.KindString}, attrs.Map{
		"NullText": "Enter title",
		"ReadOnly": true,
	})

	if got := node.StringAttr("NullText"); got != "Enter title" {
		t.Fatalf("StringAttr = %q", got)
	}
	if !node.BoolAttr("ReadOnly") {
		t.Fatal("BoolAttr should be true")
	}
	if node.Attr("missing") != nil {
		t.Fatal("missing attribute should be nil")
	}

	var nilNode *Node
	if nilNode.Attr("x") != nil {
		t.Fatal("nil node attribute should be nil")
	}
}

func TestWalkOrderAndStop(t *testing.T) {
	root := Element("div",
		Widget("textbox", "a", model.DeclaredType{Kind: model.KindString}, nil),
		Element("fieldset",
			Widget("radio", "b", model.DeclaredType{Kind: model.KindString}, nil),
			Widget("radio", "c", model.DeclaredType{Kind: model.KindString}, nil),
		),
	)

	var fields []string
	root.Walk(func(node *Node) bool {
		if node.Kind == KindWidget {
			fields = append(fields, node.Field)
		}
		return true
	})
	want := []string{"a", "b", "c"}
	for i, field := range want {
		if fields[i] != field {
			t.Fatalf("walk order %v, want %v", fields, want)
		}
	}

	count := 0
	root.Walk(func(node *Node) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("walk should have stopped after 2 visits, did %d", count)
	}

	if got := len(root.Widgets()); got != 3 {
		t.Fatalf("Widgets() = %d nodes, want 3", got)
	}
}
