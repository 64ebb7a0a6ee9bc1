package cli

import (
	"strings"
	"testing"

	"github.com/typepack/typepack/pack"
	"github.com/typepack/typepack/token"
)

func scalars() *pack.Pack {
	return pack.New(
		token.Typ[token.Char],
		token.Typ[token.Short],
		token.Typ[token.Int],
		token.Typ[token.Long],
		token.Typ[token.LongLong],
	)
}

func TestBuildReport(t *testing.T) {
	idx := uint(2)
	r, err := buildReport(scalars(), queryOptions{
		Size:   true,
		Unique: true,
		At:     &idx,
		Has:    token.Typ[token.ULong],
		Find:   token.Typ[token.Int],
	})
	if err != nil {
		t.Fatalf("buildReport error: %v", err)
	}

	if r.Pack != "(char, short, int, long, long long)" {
		t.Errorf("Pack = %q", r.Pack)
	}
	if r.Size == nil || *r.Size != 5 {
		t.Errorf("Size = %v, want 5", r.Size)
	}
	if r.Unique == nil || !*r.Unique {
		t.Errorf("Unique = %v, want true", r.Unique)
	}
	if r.At == nil || r.At.Index != 2 || r.At.Type != "int" {
		t.Errorf("At = %+v, want index 2 type int", r.At)
	}
	if r.Has == nil || r.Has.Found {
		t.Errorf("Has = %+v, want not found", r.Has)
	}
	if r.Find == nil || !r.Find.Found || r.Find.Index != 2 {
		t.Errorf("Find = %+v, want found at 2", r.Find)
	}
}

func TestBuildReportOmitsUnrequested(t *testing.T) {
	r, err := buildReport(scalars(), queryOptions{Size: true})
	if err != nil {
		t.Fatalf("buildReport error: %v", err)
	}
	if r.Unique != nil || r.At != nil || r.Has != nil || r.Find != nil {
		t.Errorf("unrequested fields set: %+v", r)
	}
}

func TestBuildReportOutOfRange(t *testing.T) {
	idx := uint(9)
	_, err := buildReport(scalars(), queryOptions{At: &idx})
	if err == nil {
		t.Fatal("buildReport succeeded for out-of-range index")
	}
	if !strings.Contains(err.Error(), "out of bounds") {
		t.Errorf("error = %q, want bounds message", err)
	}
}

func TestBuildReportFindAbsent(t *testing.T) {
	r, err := buildReport(scalars(), queryOptions{Find: token.Typ[token.Double]})
	if err != nil {
		t.Fatalf("buildReport error: %v", err)
	}
	if r.Find == nil || r.Find.Found {
		t.Errorf("Find = %+v, want not found", r.Find)
	}
}

func TestRenderReport(t *testing.T) {
	old := colorEnabled
	colorEnabled = false
	defer func() { colorEnabled = old }()

	idx := uint(0)
	r, err := buildReport(pack.New(token.Typ[token.Int], token.Typ[token.Int]), queryOptions{
		Size:   true,
		Unique: true,
		At:     &idx,
		Find:   token.Typ[token.Double],
	})
	if err != nil {
		t.Fatalf("buildReport error: %v", err)
	}

	got := renderReport(r)
	want := "pack (int, int)\n" +
		"size    2\n" +
		"unique  false\n" +
		"at 0    int\n" +
		"find double  not found\n"
	if got != want {
		t.Errorf("renderReport:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestParseOne(t *testing.T) {
	x, err := parseOne("unsigned long")
	if err != nil {
		t.Fatalf("parseOne error: %v", err)
	}
	if x.String() != "unsigned long" {
		t.Errorf("parseOne = %q, want %q", x, "unsigned long")
	}

	if _, err := parseOne("int, char"); err == nil {
		t.Error("parseOne accepted a two-type expression")
	}
	if _, err := parseOne("quux"); err == nil {
		t.Error("parseOne accepted an unknown name")
	}
}
