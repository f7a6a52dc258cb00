package cmd

import (
	"testing"

	"github.com/Nakamura9310/snapmark/domain/geometry"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("100, 250")
	if err != nil {
		t.Fatalf("parsePoint: %v", err)
	}
	if p != geometry.Pt(100, 250) {
		t.Errorf("got %v, want (100,250)", p)
	}
	for _, bad := range []string{"", "100", "a,b", "1,2,3"} {
		if _, err := parsePoint(bad); err == nil {
			t.Errorf("parsePoint(%q) accepted", bad)
		}
	}
}

func TestParseDrag(t *testing.T) {
	p1, p2, err := parseDrag("10,10:50,5")
	if err != nil {
		t.Fatalf("parseDrag: %v", err)
	}
	if p1 != geometry.Pt(10, 10) || p2 != geometry.Pt(50, 5) {
		t.Errorf("got %v %v", p1, p2)
	}
	for _, bad := range []string{"", "10,10", "10,10:20", "a:b"} {
		if _, _, err := parseDrag(bad); err == nil {
			t.Errorf("parseDrag(%q) accepted", bad)
		}
	}
}

func TestParseRect(t *testing.T) {
	r, err := parseRect("20,30,200,80")
	if err != nil {
		t.Fatalf("parseRect: %v", err)
	}
	want := geometry.FromPosSize(geometry.Pt(20, 30), geometry.Size{W: 200, H: 80})
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
	for _, bad := range []string{"", "1,2,3", "1,2,0,4", "1,2,3,-4", "a,b,c,d"} {
		if _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q) accepted", bad)
		}
	}
}

func TestParseText(t *testing.T) {
	p, content, err := parseText("24,28,fix this, please")
	if err != nil {
		t.Fatalf("parseText: %v", err)
	}
	if p != geometry.Pt(24, 28) {
		t.Errorf("point = %v, want (24,28)", p)
	}
	if content != "fix this, please" {
		t.Errorf("content = %q", content)
	}
	for _, bad := range []string{"", "1,2", "1,2,", "a,b,c"} {
		if _, _, err := parseText(bad); err == nil {
			t.Errorf("parseText(%q) accepted", bad)
		}
	}
}
