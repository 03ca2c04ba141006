package portfolio

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{TRY(1234.567), "₺1,234.57"},
		{TRY(-50), "-₺50.00"},
		{M(1000, "USD"), "$1,000.00"},
		{M(12.5, "XYZ"), "12.50 XYZ"},
		{NO(3), "3.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := TRY(0.001).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
	if got := TRY(5).SignedString(); got != "+₺5.00" {
		t.Errorf("SignedString() = %q, want +₺5.00", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := TRY(10).Add(NO(5)); !got.Equal(TRY(15)) || got.Currency() != "TRY" {
		t.Errorf("Add() = %v, want TRY 15", got)
	}
	if got := TRY(100).Mul(Q(2.5)).Div(Q(5)); !got.Equal(TRY(50)) {
		t.Errorf("Mul().Div() = %v, want 50", got)
	}
	if got := TRY(100).DivPrice(TRY(8)); !got.Equal(Q(12.5)) {
		t.Errorf("DivPrice() = %v, want 12.5", got)
	}
	if got := TRY(1.005).Round(); !got.Equal(TRY(1.01)) {
		t.Errorf("Round() = %v, want 1.01", got.Decimal())
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Add() of two currencies did not panic")
		}
	}()
	TRY(1).Add(M(1, "USD"))
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(TRY(2450.125))
	if err != nil || string(b) != "2450.125" {
		t.Errorf("json.Marshal() = %s, %v, want 2450.125", b, err)
	}
	var m Money
	if err := json.Unmarshal([]byte(`"12.30"`), &m); err != nil || !m.Equal(TRY(12.3)) {
		t.Errorf("json.Unmarshal() = %v, %v, want 12.3", m, err)
	}
}

func TestPercent_SignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{12.346, "+12.35%"},
		{-3.1, "-3.10%"},
		{0.001, "-"},
		{-0.001, "-"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}
