package model_test

import (
	"testing"

	"github.com/goliatone/go-journalvm/pkg/model"
)

func TestDateFormat(t *testing.T) {
	tests := []struct {
		date  model.Date
		want  string
		known bool
	}{
		{model.Date{Year: 2020}, "2020", true},
		{model.Date{Year: 2020, Month: 3}, "March 2020", true},
		{model.Date{Year: 2020, Month: 3, Day: 9}, "March 9, 2020", true},
		{model.Date{Year: 1000}, "1000", false},
		{model.Date{Year: 1001}, "1001", true},
	}
	for _, tt := range tests {
		if got := tt.date.Format(); got != tt.want {
			t.Fatalf("Format(%+v) = %q, want %q", tt.date, got, tt.want)
		}
		if got := tt.date.Known(); got != tt.known {
			t.Fatalf("Known(%+v) = %v, want %v", tt.date, got, tt.known)
		}
	}
}

func TestPageRange(t *testing.T) {
	tests := []struct {
		pages model.PageRange
		want  string
	}{
		{model.PageRange{First: "12", Last: "20"}, "pp. 12-20"},
		{model.PageRange{First: "12", Last: "12"}, "pp. 12"},
		{model.PageRange{First: "1", Last: "9", Range: "1–9"}, "pp. 1–9"},
	}
	for _, tt := range tests {
		if got := tt.pages.String(); got != tt.want {
			t.Fatalf("String(%+v) = %q, want %q", tt.pages, got, tt.want)
		}
	}
}

func TestPlace(t *testing.T) {
	place := model.Place{Name: []string{"Dept. of Economics", " ", "University of Essex"}}
	if got := place.String(); got != "Dept. of Economics, University of Essex" {
		t.Fatalf("unexpected place %q", got)
	}
	if !(model.Place{}).Empty() {
		t.Fatalf("expected empty place")
	}
	if got := (model.Person{PreferredName: " Ana "}).String(); got != "Ana" {
		t.Fatalf("unexpected person name %q", got)
	}
}
