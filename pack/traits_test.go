package pack

import (
	"testing"

	"github.com/typepack/typepack/token"
)

var (
	charT     = token.Typ[token.Char]
	shortT    = token.Typ[token.Short]
	intT      = token.Typ[token.Int]
	longT     = token.Typ[token.Long]
	longLongT = token.Typ[token.LongLong]
	floatT    = token.Typ[token.Float]
	doubleT   = token.Typ[token.Double]
	voidT     = token.Typ[token.Void]
)

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		ts   []token.Type
		want uint
	}{
		{"empty", nil, 0},
		{"single", []token.Type{intT}, 1},
		{"five scalars", []token.Type{charT, shortT, intT, longT, longLongT}, 5},
		{"qualified variants counted separately", []token.Type{
			intT, token.NewRef(intT), token.NewRRef(intT),
			doubleT, token.NewRef(doubleT), token.NewRRef(doubleT),
		}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.ts...); got != tt.want {
				t.Errorf("Size(...) = %d, want %d", got, tt.want)
			}
			if got := New(tt.ts...).Size(); got != tt.want {
				t.Errorf("Pack.Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	ts := []token.Type{intT, token.NewRef(intT), token.NewRRef(intT)}
	p := New(ts...)

	for i, want := range ts {
		n := uint(i)
		if got := At(n, ts...); !token.Identical(got, want) {
			t.Errorf("At(%d, ...) = %s, want %s", n, got, want)
		}
		if got := p.At(n); !token.Identical(got, want) {
			t.Errorf("Pack.At(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	p := New(charT, shortT, intT)

	mustPanic(t, "At(3) on size-3 pack", func() { p.At(3) })
	mustPanic(t, "At(100) on size-3 pack", func() { p.At(100) })
	mustPanic(t, "At(NotFound) on size-3 pack", func() { p.At(NotFound) })
	mustPanic(t, "At(0) on empty pack", func() { Empty.At(0) })
	mustPanic(t, "native At(0) on empty list", func() { At(0) })
}

func TestHas(t *testing.T) {
	tests := []struct {
		name string
		x    token.Type
		ts   []token.Type
		want bool
	}{
		{"empty pack has nothing", voidT, nil, false},
		{"void in empty pack", voidT, nil, false},
		{"single match", intT, []token.Type{intT}, true},
		{"match in long pack", intT, []token.Type{doubleT, floatT, charT, shortT, intT, longT}, true},
		{"ref variant does not match base", intT, []token.Type{doubleT, floatT, charT, shortT, token.NewRef(intT), longT}, false},
		{"base does not match ref variant", token.NewRef(intT), []token.Type{doubleT, intT}, false},
		{"absent", doubleT, []token.Type{charT, shortT, intT}, false},
		{"first of duplicates", intT, []token.Type{intT, intT}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Has(tt.x, tt.ts...); got != tt.want {
				t.Errorf("Has(%s, ...) = %v, want %v", tt.x, got, tt.want)
			}
			if got := New(tt.ts...).Has(tt.x); got != tt.want {
				t.Errorf("Pack.Has(%s) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		x    token.Type
		ts   []token.Type
		want uint
	}{
		{"empty pack", voidT, nil, NotFound},
		{"head", charT, []token.Type{charT, shortT, intT}, 0},
		{"middle", intT, []token.Type{charT, shortT, intT, longT, longLongT}, 2},
		{"last", longLongT, []token.Type{charT, shortT, intT, longT, longLongT}, 4},
		{"absent", doubleT, []token.Type{charT, shortT, intT}, NotFound},
		{"first occurrence of duplicate", intT, []token.Type{intT, intT}, 0},
		{"first occurrence wins over later", intT, []token.Type{charT, shortT, intT, longT, longLongT, intT}, 2},
		{"ref variant found by identity", token.NewRef(intT), []token.Type{intT, token.NewRef(intT)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(tt.x, tt.ts...); got != tt.want {
				t.Errorf("Find(%s, ...) = %d, want %d", tt.x, got, tt.want)
			}
			if got := New(tt.ts...).Find(tt.x); got != tt.want {
				t.Errorf("Pack.Find(%s) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name string
		ts   []token.Type
		want bool
	}{
		{"empty", nil, true},
		{"single", []token.Type{intT}, true},
		{"two identical", []token.Type{intT, intT}, false},
		{"three identical", []token.Type{intT, intT, intT}, false},
		{"four identical", []token.Type{intT, intT, intT, intT}, false},
		{"five identical", []token.Type{intT, intT, intT, intT, intT}, false},
		{"all distinct", []token.Type{charT, shortT, intT, longT, longLongT}, true},
		{"non-adjacent duplicate", []token.Type{charT, shortT, intT, longT, longLongT, intT}, false},
		{"adjacent duplicate in middle", []token.Type{charT, intT, intT, longT}, false},
		{"duplicate at both ends", []token.Type{charT, shortT, charT}, false},
		{"qualified variants are distinct tokens", []token.Type{
			intT, token.NewRef(intT), token.NewRRef(intT),
		}, true},
		{"equal refs built separately", []token.Type{
			token.NewRef(intT), token.NewRef(intT),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.ts...); got != tt.want {
				t.Errorf("Unique(...) = %v, want %v", got, tt.want)
			}
			if got := New(tt.ts...).Unique(); got != tt.want {
				t.Errorf("Pack.Unique() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestScenarios pins the end-to-end behavior for a handful of concrete
// sequences across all algorithms at once.
func TestScenarios(t *testing.T) {
	t.Run("five scalars", func(t *testing.T) {
		p := New(charT, shortT, intT, longT, longLongT)
		if p.Size() != 5 {
			t.Errorf("Size() = %d, want 5", p.Size())
		}
		if got := p.At(2); !token.Identical(got, intT) {
			t.Errorf("At(2) = %s, want int", got)
		}
		if got := p.Find(intT); got != 2 {
			t.Errorf("Find(int) = %d, want 2", got)
		}
		if !p.Has(intT) {
			t.Error("Has(int) = false, want true")
		}
		if !p.Unique() {
			t.Error("Unique() = false, want true")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if Empty.Size() != 0 {
			t.Errorf("Size() = %d, want 0", Empty.Size())
		}
		for _, x := range []token.Type{voidT, intT, token.NewRef(intT)} {
			if got := Empty.Find(x); got != NotFound {
				t.Errorf("Find(%s) = %d, want NotFound", x, got)
			}
			if Empty.Has(x) {
				t.Errorf("Has(%s) = true, want false", x)
			}
		}
		if !Empty.Unique() {
			t.Error("Unique() = false, want true")
		}
	})

	t.Run("replacing int with int& hides it", func(t *testing.T) {
		with := New(doubleT, floatT, charT, shortT, intT, longT)
		without := New(doubleT, floatT, charT, shortT, token.NewRef(intT), longT)
		if !with.Has(intT) {
			t.Error("Has(int) = false, want true")
		}
		if without.Has(intT) {
			t.Error("Has(int) = true after replacing int with int&, want false")
		}
	})

	t.Run("duplicate int at positions 2 and 5", func(t *testing.T) {
		p := New(charT, shortT, intT, longT, longLongT, intT)
		if p.Unique() {
			t.Error("Unique() = true, want false")
		}
		if got := p.Find(intT); got != 2 {
			t.Errorf("Find(int) = %d, want 2 (first occurrence)", got)
		}
	})
}
