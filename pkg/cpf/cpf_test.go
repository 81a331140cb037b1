package cpf

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"known valid bare", "52998224725", true},
		{"known valid formatted", "529.982.247-25", true},
		{"another valid", "111.444.777-35", true},
		{"valid with noise", " 390.533.447-05 ", true},
		{"repeated digits", "11111111111", false},
		{"repeated digits formatted", "222.222.222-22", false},
		{"all zeros", "00000000000", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"bad first check digit", "52998224715", false},
		{"bad second check digit", "52998224726", false},
		{"letters only", "abcdefghijk", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Valid(tc.in); got != tc.want {
				t.Fatalf("Valid(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("529.982.247-25"); got != "52998224725" {
		t.Fatalf("unexpected strip result: %s", got)
	}
	if got := Strip("abc"); got != "" {
		t.Fatalf("expected empty strip, got %s", got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	formatted := Format("52998224725")
	if formatted != "529.982.247-25" {
		t.Fatalf("unexpected format: %s", formatted)
	}
	if got := Strip(formatted); got != "52998224725" {
		t.Fatalf("format/strip round trip broken: %s", got)
	}

	// Non-11-digit input passes through untouched.
	if got := Format("1234"); got != "1234" {
		t.Fatalf("short input should be unchanged, got %s", got)
	}
}
