package validation

import "testing"

func TestMessageRendering(t *testing.T) {
	cases := []struct {
		fields []string
		want   string
	}{
		{nil, ""},
		{[]string{"username"}, "Username is required!"},
		{[]string{"username", "email"}, "Username and email are required!"},
		{[]string{"role", "firstName", "business"}, "Role, firstName and business are required!"},
	}
	for _, tc := range cases {
		m := Missing(tc.fields)
		if got := m.Message(); got != tc.want {
			t.Fatalf("Message(%v) = %q, want %q", tc.fields, got, tc.want)
		}
	}
}

func TestRequireHelpers(t *testing.T) {
	var m Missing
	m.Require("name", "  ")
	m.RequireID("business", 0)
	m.RequirePositive("price", 0)
	m.RequirePresent("available", false)
	if len(m) != 4 {
		t.Fatalf("expected 4 missing fields, got %v", []string(m))
	}

	var ok Missing
	ok.Require("name", "Salad")
	ok.RequireID("business", 3)
	ok.RequirePositive("price", 0.5)
	ok.RequirePresent("available", true)
	if !ok.Empty() {
		t.Fatalf("expected no missing fields, got %v", []string(ok))
	}
}
