package coinmatch_test

import (
	"errors"
	"testing"

	"github.com/DE-labtory/coinmatch"
)

func TestValueInCents(t *testing.T) {
	tests := []struct {
		coin     coinmatch.Coin
		expected uint32
	}{
		{coin: coinmatch.Penny{}, expected: 1},
		{coin: coinmatch.Nickel{}, expected: 5},
		{coin: coinmatch.Dime{}, expected: 10},
		{coin: coinmatch.Quarter{State: coinmatch.Alabama}, expected: 25},
		{coin: coinmatch.Quarter{State: coinmatch.Alaska}, expected: 25},
	}

	for i, test := range tests {
		if got := coinmatch.ValueInCents(test.coin); got != test.expected {
			t.Fatalf("test[%d] failed: expected %s to be worth %d, got %d", i, test.coin, test.expected, got)
		}
	}
}

func TestValueInCents_NilCoinPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for nil coin")
		}
	}()
	coinmatch.ValueInCents(nil)
}

func TestParseCoin(t *testing.T) {
	tests := []struct {
		input    string
		expected coinmatch.Coin
	}{
		{input: "penny", expected: coinmatch.Penny{}},
		{input: "Nickel", expected: coinmatch.Nickel{}},
		{input: " DIME ", expected: coinmatch.Dime{}},
		{input: "quarter", expected: coinmatch.Quarter{State: coinmatch.Alabama}},
		{input: "quarter:alaska", expected: coinmatch.Quarter{State: coinmatch.Alaska}},
		{input: "Quarter:Alabama", expected: coinmatch.Quarter{State: coinmatch.Alabama}},
		{input: "quarter: alaska", expected: coinmatch.Quarter{State: coinmatch.Alaska}},
		{input: "quarter : Alaska ", expected: coinmatch.Quarter{State: coinmatch.Alaska}},
	}

	for i, test := range tests {
		c, err := coinmatch.ParseCoin(test.input)
		if err != nil {
			t.Fatalf("test[%d] failed: unexpected err: %s", i, err)
		}
		if c != test.expected {
			t.Fatalf("test[%d] failed: expected %s, got %s", i, test.expected, c)
		}
	}
}

func TestParseCoin_Errors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{input: "", expected: coinmatch.ErrUnknownCoin},
		{input: "half-dollar", expected: coinmatch.ErrUnknownCoin},
		{input: "penny:alaska", expected: coinmatch.ErrUnknownCoin},
		{input: "quarter:texas", expected: coinmatch.ErrUnknownState},
	}

	for i, test := range tests {
		_, err := coinmatch.ParseCoin(test.input)
		if !errors.Is(err, test.expected) {
			t.Fatalf("test[%d] failed: expected %v, got %v", i, test.expected, err)
		}
	}
}

func TestCoin_String(t *testing.T) {
	if s := (coinmatch.Quarter{State: coinmatch.Alaska}).String(); s != "Quarter(Alaska)" {
		t.Fatalf("expected Quarter(Alaska), got %s", s)
	}
	if s := coinmatch.UsState(9).String(); s != "UsState(9)" {
		t.Fatalf("expected UsState(9), got %s", s)
	}
}
