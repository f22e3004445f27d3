package customprop

import (
	"testing"

	"github.com/taroyuyu/material-components-web/pkg/css"
)

func TestNewNormalizesName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare name", "shape-radius", "--shape-radius"},
		{"already prefixed", "--shape-radius", "--shape-radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.in).Name(); got != tt.want {
				t.Errorf("New(%q).Name() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVar(t *testing.T) {
	tests := []struct {
		name string
		prop Prop
		want string
	}{
		{"no fallback", New("foo"), "var(--foo)"},
		{"constant fallback", New("foo", "8px"), "var(--foo, 8px)"},
		{"numeric fallback", New("foo", 0), "var(--foo, 0)"},
		{
			"chained fallback",
			New("a", New("b", "8px")),
			"var(--a, var(--b, 8px))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prop.Var(); got != tt.want {
				t.Errorf("Var() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackResolvesChain(t *testing.T) {
	tests := []struct {
		name string
		prop Prop
		want string
	}{
		{"none", New("foo"), ""},
		{"constant", New("foo", "8px"), "8px"},
		{"one hop", New("a", New("b", "8px")), "8px"},
		{"two hops", New("a", New("b", New("c", "50%"))), "50%"},
		{"chain ending without constant", New("a", New("b")), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prop.Fallback(); got != tt.want {
				t.Errorf("Fallback() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithFallback(t *testing.T) {
	base := New("foo")
	withFB := base.WithFallback("4px")

	if base.HasFallback() {
		t.Error("WithFallback mutated the receiver")
	}
	if got := withFB.Var(); got != "var(--foo, 4px)" {
		t.Errorf("Var() = %q, want %q", got, "var(--foo, 4px)")
	}
}

func TestIs(t *testing.T) {
	if !Is(New("foo")) {
		t.Error("Is(Prop) = false")
	}
	if Is("var(--foo)") {
		t.Error("Is(string) = true")
	}
	if Is(css.String("16px")) {
		t.Error("Is(css.String) = true")
	}
}

func TestPropIsCSSValue(t *testing.T) {
	var v css.Value = New("foo", "8px")
	if got := v.CSS(); got != "var(--foo, 8px)" {
		t.Errorf("CSS() = %q, want %q", got, "var(--foo, 8px)")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantVar string
		ok      bool
	}{
		{"plain reference", "var(--foo)", "var(--foo)", true},
		{"with fallback", "var(--foo, 8px)", "var(--foo, 8px)", true},
		{"nested", "var(--a, var(--b, 8px))", "var(--a, var(--b, 8px))", true},
		{"surrounding space", "  var(--foo, 8px)  ", "var(--foo, 8px)", true},
		{"not a var expression", "16px", "", false},
		{"missing dashes", "var(foo)", "", false},
		{"unterminated", "var(--foo", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && p.Var() != tt.wantVar {
				t.Errorf("Parse(%q).Var() = %q, want %q", tt.in, p.Var(), tt.wantVar)
			}
		})
	}
}

func TestParseNestedFallbackResolves(t *testing.T) {
	p, ok := Parse("var(--a, var(--b, 8px))")
	if !ok {
		t.Fatal("Parse failed")
	}
	if got := p.Fallback(); got != "8px" {
		t.Errorf("Fallback() = %q, want %q", got, "8px")
	}
}
