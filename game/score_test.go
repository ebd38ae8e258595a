package game

import "testing"

func TestScoreGuess(t *testing.T) {
	cases := []struct {
		name      string
		code      Row
		guess     Row
		classic   Score
		canonical Score
	}{
		{
			name:      "exact match",
			code:      Row{Red, Blue, Yellow, Cyan},
			guess:     Row{Red, Blue, Yellow, Cyan},
			classic:   Score{Exact: 4},
			canonical: Score{Exact: 4},
		},
		{
			name:      "nothing in common",
			code:      Row{White, White, White, White},
			guess:     Row{Red, Blue, Yellow, Cyan},
			classic:   Score{},
			canonical: Score{},
		},
		{
			name:      "repeated code colors",
			code:      Row{Red, Red, Blue, Yellow},
			guess:     Row{Red, Blue, Red, Cyan},
			classic:   Score{Exact: 1, ColorOnly: 2},
			canonical: Score{Exact: 1, ColorOnly: 2},
		},
		{
			name:      "all colors misplaced",
			code:      Row{Red, Red, Blue, Blue},
			guess:     Row{Blue, Blue, Red, Red},
			classic:   Score{ColorOnly: 4},
			canonical: Score{ColorOnly: 4},
		},
		{
			name:      "repeated guess color matched once in code",
			code:      Row{Red, Blue, Yellow, White},
			guess:     Row{Red, Red, Red, Red},
			classic:   Score{Exact: 1, ColorOnly: 3},
			canonical: Score{Exact: 1},
		},
		{
			name:      "repeated guess color already matched exactly",
			code:      Row{Red, Red, Blue, Yellow},
			guess:     Row{Blue, Blue, Blue, Blue},
			classic:   Score{Exact: 1, ColorOnly: 3},
			canonical: Score{Exact: 1},
		},
		{
			name:      "more guess repeats than code repeats",
			code:      Row{Purple, Purple, White, Cyan},
			guess:     Row{White, Purple, Purple, Purple},
			classic:   Score{Exact: 1, ColorOnly: 3},
			canonical: Score{Exact: 1, ColorOnly: 2},
		},
		{
			name:      "empty pegs never match",
			code:      Row{Red, Red, Blue, Yellow},
			guess:     Row{},
			classic:   Score{},
			canonical: Score{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreGuess(tc.code, tc.guess, Classic); got != tc.classic {
				t.Errorf("classic: ScoreGuess(%v, %v)=%v want %v", tc.code, tc.guess, got, tc.classic)
			}
			if got := ScoreGuess(tc.code, tc.guess, Canonical); got != tc.canonical {
				t.Errorf("canonical: ScoreGuess(%v, %v)=%v want %v", tc.code, tc.guess, got, tc.canonical)
			}
		})
	}
}

func TestScoreKeyPegs(t *testing.T) {
	cases := []struct {
		score Score
		want  [CodeLength]KeyPeg
	}{
		{Score{}, [CodeLength]KeyPeg{KeyEmpty, KeyEmpty, KeyEmpty, KeyEmpty}},
		{Score{Exact: 4}, [CodeLength]KeyPeg{KeyRed, KeyRed, KeyRed, KeyRed}},
		{Score{Exact: 1, ColorOnly: 2}, [CodeLength]KeyPeg{KeyRed, KeyWhite, KeyWhite, KeyEmpty}},
		{Score{ColorOnly: 3}, [CodeLength]KeyPeg{KeyWhite, KeyWhite, KeyWhite, KeyEmpty}},
	}
	for _, tc := range cases {
		if got := tc.score.KeyPegs(); got != tc.want {
			t.Errorf("%v.KeyPegs()=%v want %v", tc.score, got, tc.want)
		}
	}
}

func TestScoreInvariants(t *testing.T) {
	// Every guess over the palette against a handful of codes
	codes := []Row{
		{Red, Red, Red, Red},
		{Red, Red, Blue, Yellow},
		{White, Purple, Yellow, Cyan},
	}
	for _, code := range codes {
		for _, a := range Colors {
			for _, b := range Colors {
				for _, c := range Colors {
					for _, d := range Colors {
						guess := Row{a, b, c, d}
						for _, rule := range []ScoringRule{Classic, Canonical} {
							score := ScoreGuess(code, guess, rule)
							if score.Exact < 0 || score.ColorOnly < 0 || score.Exact+score.ColorOnly > CodeLength {
								t.Fatalf("%v: ScoreGuess(%v, %v)=%v out of range", rule, code, guess, score)
							}
							if score.Solved() != (guess == code) {
								t.Fatalf("%v: ScoreGuess(%v, %v)=%v solved mismatch", rule, code, guess, score)
							}
						}
					}
				}
			}
		}
	}
}

func TestParseScoringRule(t *testing.T) {
	for _, name := range []string{"classic", " Canonical "} {
		if _, err := ParseScoringRule(name); err != nil {
			t.Errorf("ParseScoringRule(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseScoringRule("knuth"); err == nil {
		t.Errorf("expected an error for an unknown rule")
	}
}
