package tabular

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "section_id,title,url\n" +
		"3.1.1,\"Units, SI\",https://example.com/a\n" +
		"3.1.2,Short row\n"

	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].Get("title"); got != "Units, SI" {
		t.Errorf("quoted field = %q, want %q", got, "Units, SI")
	}
	if got := rows[1].Get("url"); got != "" {
		t.Errorf("padded field = %q, want empty", got)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows != nil {
		t.Errorf("got %v, want nil", rows)
	}
}

func TestRowHelpers(t *testing.T) {
	row := Row{
		"title":      "  Waves  ",
		"objectives": "know this | explain that ||",
		"answers":    "TRUE",
		"empty":      "",
	}

	if got := row.Get("title"); got != "Waves" {
		t.Errorf("Get = %q", got)
	}
	if got := row.GetOr("empty", "fallback"); got != "fallback" {
		t.Errorf("GetOr = %q", got)
	}
	if got := row.GetOr("missing", "fallback"); got != "fallback" {
		t.Errorf("GetOr missing = %q", got)
	}

	objs := row.List("objectives")
	if len(objs) != 2 || objs[0] != "know this" || objs[1] != "explain that" {
		t.Errorf("List = %v", objs)
	}
	if row.List("missing") != nil {
		t.Error("List on missing key should be nil")
	}

	if !row.Bool("answers") {
		t.Error("Bool(answers) = false, want true")
	}
	if row.Bool("empty") {
		t.Error("Bool(empty) = true, want false")
	}
}
