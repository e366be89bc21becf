package banksim

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	testCases := []struct {
		name string
		got  Money
		want Money
	}{
		{"add", USD(100).Add(USD(2.5)), USD(102.5)},
		{"sub", USD(100).Sub(USD(2.5)), USD(97.5)},
		{"sub below zero", USD(1).Sub(USD(2.5)), USD(-1.5)},
		{"neg", USD(3).Neg(), USD(-3)},
		{"mul int", USD(0.5).MulInt(7), USD(3.5)},
		{"mul int zero", USD(0.5).MulInt(0), USD(0)},
		{"weak currency add", M(5, "").Add(USD(1)), USD(6)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("got %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(95), "95"},
		{USD(99.5), "99.5"},
		{USD(-1.25), "-1.25"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyDisplay(t *testing.T) {
	if got := USD(1234.5).Display(); got != "$1,234.50" {
		t.Errorf("Display() = %q, want %q", got, "$1,234.50")
	}
	if got := EUR(-5).Display(); got == "" {
		t.Error("Display() returned an empty string for a negative value")
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("adding USD to EUR should panic")
		}
	}()
	_ = USD(1).Add(EUR(1))
}
