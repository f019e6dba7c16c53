package interp

import "testing"

func TestStringifyNumberStripsTrailingZero(t *testing.T) {
	cases := map[float64]string{
		7:      "7",
		7.5:    "7.5",
		0:      "0",
		-3:     "-3",
		1.0 / 3: "0.3333333333333333",
	}
	for in, want := range cases {
		if got := Stringify(in); got != want {
			t.Errorf("Stringify(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestStringifyNilBoolString(t *testing.T) {
	if got := Stringify(nil); got != "nil" {
		t.Errorf("Stringify(nil) = %q, want nil", got)
	}
	if got := Stringify(true); got != "true" {
		t.Errorf("Stringify(true) = %q, want true", got)
	}
	if got := Stringify("hi"); got != "hi" {
		t.Errorf("Stringify(\"hi\") = %q, want hi", got)
	}
}

func TestIsTruthy(t *testing.T) {
	falsy := []Value{nil, false}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Errorf("IsTruthy(%v) = true, want false", v)
		}
	}
	truthy := []Value{true, 0.0, "", "x"}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Errorf("IsTruthy(%#v) = false, want true", v)
		}
	}
}

func TestIsEqualNilHandling(t *testing.T) {
	if !IsEqual(nil, nil) {
		t.Error("nil should equal nil")
	}
	if IsEqual(nil, false) {
		t.Error("nil should not equal false")
	}
	if IsEqual(nil, 0.0) {
		t.Error("nil should not equal 0")
	}
}

func TestIsEqualNumbersAndStrings(t *testing.T) {
	if !IsEqual(1.0, 1.0) {
		t.Error("1 should equal 1")
	}
	if IsEqual(1.0, 2.0) {
		t.Error("1 should not equal 2")
	}
	if !IsEqual("a", "a") {
		t.Error("\"a\" should equal \"a\"")
	}
	if IsEqual("a", "b") {
		t.Error("\"a\" should not equal \"b\"")
	}
}
