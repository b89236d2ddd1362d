package host

import (
	"math"
	"testing"
)

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil callable", Callable(nil), true},
		{"non-nil callable", Callable(func(...any) (any, error) { return nil, nil }), false},
		{"zero int", 0, false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.v); got != tt.want {
				t.Errorf("IsNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestToInt32(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		want    int32
		wantErr bool
	}{
		{"int32", int32(7), 7, false},
		{"int", 42, 42, false},
		{"int64 in range", int64(-5), -5, false},
		{"int64 overflow", int64(math.MaxInt32) + 1, 0, true},
		{"integral float", float64(100), 100, false},
		{"fractional float", 1.5, 0, true},
		{"float overflow", float64(math.MaxInt32) * 2, 0, true},
		{"bool true", true, 1, false},
		{"bool false", false, 0, false},
		{"string", "1", 0, true},
		{"nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt32(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInt32(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToInt32(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		want    int64
		wantErr bool
	}{
		{"int64", int64(1 << 40), 1 << 40, false},
		{"int", -3, -3, false},
		{"uint64 overflow", uint64(math.MaxUint64), 0, true},
		{"integral float", float64(1 << 30), 1 << 30, false},
		{"fractional float", 0.25, 0, true},
		{"string", "x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInt64(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToInt64(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	if s, err := ToString("hello"); err != nil || s != "hello" {
		t.Fatalf("ToString(hello) = %q, %v", s, err)
	}
	if _, err := ToString(5); err == nil {
		t.Fatal("ToString(5) should fail, numbers are not stringified")
	}
}

func TestToStrings(t *testing.T) {
	got, err := ToStrings([]any{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ToStrings = %v", got)
	}

	if _, err := ToStrings([]any{"a", 1}); err == nil {
		t.Error("mixed sequence should fail")
	}
	if _, err := ToStrings("a"); err == nil {
		t.Error("bare string should fail")
	}

	direct, err := ToStrings([]string{"x"})
	if err != nil || len(direct) != 1 {
		t.Errorf("ToStrings([]string) = %v, %v", direct, err)
	}
}
