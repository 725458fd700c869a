package store

import (
	"strings"
	"testing"
	"time"
)

func TestResultValue(t *testing.T) {
	r := &Result{
		Columns: []string{"genre", "tracks_sold"},
		Rows:    [][]any{{"Rock", int64(561)}},
	}

	v, ok := r.Value(0, "tracks_sold")
	if !ok {
		t.Fatal("expected value")
	}
	if f, _ := AsFloat(v); f != 561 {
		t.Errorf("tracks_sold = %v, want 561", f)
	}

	if _, ok := r.Value(0, "missing"); ok {
		t.Error("expected ok=false for unknown column")
	}
	if _, ok := r.Value(5, "genre"); ok {
		t.Error("expected ok=false for out-of-range row")
	}
}

func TestResultMarshalJSON(t *testing.T) {
	ts := time.Date(2017, 4, 30, 12, 0, 0, 0, time.UTC)
	r := Result{
		Columns: []string{"name", "raw", "hired", "sales"},
		Rows:    [][]any{{"Jane Peacock", []byte("blob"), ts, 1731.51}},
	}

	b, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	s := string(b)
	for _, want := range []string{`"columns"`, `"Jane Peacock"`, `"blob"`, `"2017-04-30T12:00:00Z"`, `1731.51`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{name: "nil", val: nil, want: ""},
		{name: "string", val: "Rock", want: "Rock"},
		{name: "int64", val: int64(561), want: "561"},
		{name: "float", val: 0.5338, want: "0.5338"},
		{name: "bytes", val: []byte("x"), want: "x"},
		{name: "time", val: time.Date(2017, 4, 30, 0, 0, 0, 0, time.UTC), want: "2017-04-30 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayString(tt.val); got != tt.want {
				t.Errorf("DisplayString() = %q, want %q", got, tt.want)
			}
		})
	}
}
