// Package cpf validates and formats Brazilian CPF numbers (the 11-digit
// national taxpayer id carried by PIX payers).
package cpf

import "strings"

// Strip removes every non-digit character from a CPF as typed by a customer
// ("529.982.247-25" -> "52998224725").
func Strip(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether the given CPF passes the official two check-digit
// algorithm. Input may be formatted or bare; it is stripped first.
//
// Sequences of a single repeated digit (e.g. "11111111111") satisfy the
// checksum arithmetic but are not assignable CPFs, so they are rejected
// explicitly.
func Valid(raw string) bool {
	c := Strip(raw)
	if len(c) != 11 {
		return false
	}
	if allSameDigit(c) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(c[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(c[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(c[i]-'0') * (11 - i)
	}
	return checkDigit(sum) == int(c[10]-'0')
}

// Format renders a bare 11-digit CPF as "000.000.000-00". Inputs that do not
// strip down to 11 digits are returned unchanged.
func Format(raw string) string {
	c := Strip(raw)
	if len(c) != 11 {
		return raw
	}
	return c[0:3] + "." + c[3:6] + "." + c[6:9] + "-" + c[9:11]
}

func checkDigit(sum int) int {
	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}

func allSameDigit(c string) bool {
	for i := 1; i < len(c); i++ {
		if c[i] != c[0] {
			return false
		}
	}
	return true
}
