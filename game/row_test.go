package game

import "testing"

func TestRowBuilderFillAndBackspace(t *testing.T) {
	builder := NewRowBuilder()
	for _, peg := range []Peg{Red, Blue, Red, Cyan} {
		if builder.IsComplete() {
			t.Fatalf("row complete after %d pegs", builder.Len())
		}
		builder.AddPeg(peg)
	}
	if !builder.IsComplete() {
		t.Fatalf("expected row to be complete after 4 pegs")
	}
	if want := (Row{Red, Blue, Red, Cyan}); builder.Line() != want {
		t.Fatalf("Line()=%v want %v", builder.Line(), want)
	}

	builder.Backspace()
	if builder.IsComplete() {
		t.Errorf("expected row to be incomplete after backspace")
	}
	if builder.Line()[3] != Empty {
		t.Errorf("expected 4th slot to be empty, got %v", builder.Line()[3])
	}
	if builder.Len() != 3 {
		t.Errorf("Len()=%d want 3", builder.Len())
	}
}

func TestRowBuilderIgnoresPegsWhenFull(t *testing.T) {
	builder := NewRowBuilder()
	for i := 0; i < CodeLength; i++ {
		builder.AddPeg(White)
	}
	builder.AddPeg(Purple)

	if want := (Row{White, White, White, White}); builder.Line() != want {
		t.Errorf("Line()=%v want %v", builder.Line(), want)
	}
	if builder.Len() != CodeLength {
		t.Errorf("Len()=%d want %d", builder.Len(), CodeLength)
	}
}

func TestRowBuilderBackspaceOnEmptyRow(t *testing.T) {
	builder := NewRowBuilder()
	builder.Backspace()
	builder.Backspace()

	if builder.Line() != (Row{}) || builder.Len() != 0 {
		t.Fatalf("expected empty row, got %v (len %d)", builder.Line(), builder.Len())
	}

	builder.AddPeg(Yellow)
	if builder.Line()[0] != Yellow {
		t.Errorf("expected first peg in slot 0, got %v", builder.Line())
	}
}

func TestRowBuilderReset(t *testing.T) {
	cases := []struct {
		name string
		ops  func(*RowBuilder)
	}{
		{"untouched", func(*RowBuilder) {}},
		{"partial", func(b *RowBuilder) {
			b.AddPeg(Red)
			b.AddPeg(Blue)
		}},
		{"full then edited", func(b *RowBuilder) {
			for _, peg := range Colors {
				b.AddPeg(peg)
			}
			b.Backspace()
			b.AddPeg(Cyan)
		}},
		{"backspaced past start", func(b *RowBuilder) {
			b.AddPeg(Red)
			b.Backspace()
			b.Backspace()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewRowBuilder()
			tc.ops(builder)
			builder.Reset()

			if builder.Line() != (Row{Empty, Empty, Empty, Empty}) {
				t.Errorf("Line()=%v want all empty", builder.Line())
			}
			if builder.Len() != 0 {
				t.Errorf("Len()=%d want 0", builder.Len())
			}
			if builder.IsComplete() {
				t.Errorf("reset row reported complete")
			}
		})
	}
}
