package formwidgets_test

import (
	"context"
	"strings"
	"testing"

	formwidgets "github.com/goliatone/go-formwidgets"
)

type signup struct {
	Email      string `form:"email,required"`
	Age        int    `form:"age"`
	Newsletter bool   `form:"newsletter"`
}

func TestGenerateHTMLFromStruct(t *testing.T) {
	model := &signup{Email: "a@b.co", Age: 30}
	form, err := formwidgets.FromStruct("signup", model)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	out, err := formwidgets.GenerateHTML(context.Background(), form, formwidgets.Options{
		Title:  "Sign Up",
		Action: "/signup",
	}, nil)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	page := string(out)
	for _, want := range []string{
		"<title>Sign Up</title>",
		`action="/signup"`,
		`name="email"`,
		`value="a@b.co"`,
		`type="number"`,
		`type="checkbox"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
}

func TestNewUsesHTMLDefault(t *testing.T) {
	generator, err := formwidgets.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	model := &signup{}
	form, err := formwidgets.FromStruct("signup", model)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	out, err := generator.Generate(context.Background(), form, "", formwidgets.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(out), "<!DOCTYPE html>") {
		t.Fatalf("expected HTML document:\n%s", out)
	}
}
