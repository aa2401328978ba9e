package budgety

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"-10", "USD", "-$10.00"},
		{"7.25", "", "7.25"}, // no currency falls back to the raw decimal
	}
	for _, tc := range tests {
		if got := M(dec(t, tc.value), tc.currency).String(); got != tc.want {
			t.Errorf("M(%s, %q).String() = %q, want %q", tc.value, tc.currency, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"30", "USD", "+$30.00"},
		{"-10", "USD", "-$10.00"},
		{"0", "USD", "-"},
		{"5", "", "+5"},
	}
	for _, tc := range tests {
		if got := M(dec(t, tc.value), tc.currency).SignedString(); got != tc.want {
			t.Errorf("M(%s, %q).SignedString() = %q, want %q", tc.value, tc.currency, got, tc.want)
		}
	}
}

func TestMoneyNeg(t *testing.T) {
	if got := M(10, "USD").Neg(); !got.Equal(M(-10, "USD")) {
		t.Errorf("Neg = %s", got)
	}
}

func TestMoneyAddWeakCurrency(t *testing.T) {
	// The empty currency is weak: it takes the currency of the other operand,
	// so a total can be accumulated from a zero value.
	total := M(0, "")
	for _, w := range []Wallet{
		{Balance: dec(t, "100"), Currency: "USD"},
		{Balance: dec(t, "50"), Currency: "USD"},
	} {
		total = total.Add(M(w.Balance, w.Currency))
	}
	if !total.Equal(M(150, "USD")) {
		t.Errorf("total = %s", total)
	}
	if got := total.String(); got != "$150.00" {
		t.Errorf("total.String() = %q", got)
	}
}
