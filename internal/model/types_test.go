package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDeclaredType(t *testing.T) {
	cases := []struct {
		raw  string
		want DeclaredType
	}{
		{"string", DeclaredType{Kind: KindString}},
		{"bool", DeclaredType{Kind: KindBool}},
		{"uint8", DeclaredType{Kind: KindUint8}},
		{"int?", DeclaredType{Kind: KindInt, Nullable: true}},
		{"int64", DeclaredType{Kind: KindInt64}},
		{"float32?", DeclaredType{Kind: KindFloat32, Nullable: true}},
		{"float64", DeclaredType{Kind: KindFloat64}},
		{"decimal?", DeclaredType{Kind: KindDecimal, Nullable: true}},
		{"  time  ", DeclaredType{Kind: KindTime}},
	}

	for _, tc := range cases {
		got, err := ParseDeclaredType(tc.raw)
		if err != nil {
			t.Fatalf("ParseDeclaredType(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDeclaredType(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseDeclaredType("complex128"); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := ParseDeclaredType(""); err == nil {
		t.Fatal("expected error for empty type")
	}
}

func TestDeclaredTypeString(t *testing.T) {
	if got := (DeclaredType{Kind: KindInt64, Nullable: true}).String(); got != "int64?" {
		t.Fatalf("String() = %q, want %q", got, "int64?")
	}
	if got := (DeclaredType{Kind: KindString}).String(); got != "string" {
		t.Fatalf("String() = %q, want %q", got, "string")
	}
}

func TestDeclaredTypeZero(t *testing.T) {
	if got := (DeclaredType{Kind: KindUint8}).Zero(); got != uint8(0) {
		t.Fatalf("uint8 zero = %#v", got)
	}
	if got := (DeclaredType{Kind: KindTime}).Zero(); got != (time.Time{}) {
		t.Fatalf("time zero = %#v", got)
	}
	zero, ok := (DeclaredType{Kind: KindDecimal}).Zero().(decimal.Decimal)
	if !ok || !zero.IsZero() {
		t.Fatalf("decimal zero = %#v", zero)
	}
	if got := (DeclaredType{Kind: KindInt, Nullable: true}).Zero(); got != nil {
		t.Fatalf("nullable zero = %#v, want nil", got)
	}
}

func TestKindNumeric(t *testing.T) {
	numeric := []Kind{KindUint8, KindInt, KindInt64, KindFloat32, KindFloat64, KindDecimal}
	for _, k := range numeric {
		if !k.Numeric() {
			t.Fatalf("%v should be numeric", k)
		}
	}
	for _, k := range []Kind{KindString, KindBool, KindTime, KindInvalid} {
		if k.Numeric() {
			t.Fatalf("%v should not be numeric", k)
		}
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"title":        "Title",
		"author_email": "Author Email",
		"publishDate":  "Publish Date",
		"maxRetries2":  "Max Retries 2",
		"":             "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPropertyDisplayLabel(t *testing.T) {
	p := Property{Name: "created_at"}
	if got := p.DisplayLabel(); got != "Created At" {
		t.Fatalf("DisplayLabel() = %q", got)
	}
	p.Label = "Creation date"
	if got := p.DisplayLabel(); got != "Creation date" {
		t.Fatalf("DisplayLabel() = %q", got)
	}
}
