package tourney

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestYearsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Years
	}{
		{"unbounded", `2003`, Unbounded(2003)},
		{"closed range", `[1998, 2005]`, Range(1998, 2005)},
		{
			"mixed list",
			`[1960, [1971, 1980], [1995, null], null]`,
			ExplicitList(
				Span{Start: 1960},
				Span{Start: 1971, End: 1980},
				Span{Start: 1995, Open: true},
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Years
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestYearsUnmarshalBad(t *testing.T) {
	for _, in := range []string{`"1998"`, `[[1998]]`, `[[1998, 2000, 2002]]`} {
		var got Years
		if err := json.Unmarshal([]byte(in), &got); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", in)
		}
	}
}

func TestYearsRoundTrip(t *testing.T) {
	values := []Years{
		Unbounded(2003),
		Range(1998, 2005),
		ExplicitList(Span{Start: 1960}, Span{Start: 1971, End: 1980}, Span{Start: 1995, Open: true}),
	}
	for _, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("Marshal(%+v): %v", value, err)
		}
		var back Years
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if !reflect.DeepEqual(back, value) {
			t.Errorf("round trip of %+v via %s gave %+v", value, data, back)
		}
	}
}

func TestYearsExpand(t *testing.T) {
	if got := (Years{}).Expand(); got != nil {
		t.Errorf("zero Years expanded to %v", got)
	}
	want := []int{1998, 1999, 2000}
	if got := Range(1998, 2000).Expand(); !reflect.DeepEqual(got, want) {
		t.Errorf("Range(1998, 2000).Expand() = %v, want %v", got, want)
	}
	list := ExplicitList(Span{Start: 1960}, Span{Start: 1971, End: 1973})
	want = []int{1960, 1971, 1972, 1973}
	if got := list.Expand(); !reflect.DeepEqual(got, want) {
		t.Errorf("list.Expand() = %v, want %v", got, want)
	}

	current := CurrentYear()
	open := Unbounded(current - 2).Expand()
	want = []int{current - 2, current - 1}
	if !reflect.DeepEqual(open, want) {
		t.Errorf("Unbounded(current-2).Expand() = %v, want %v", open, want)
	}
}
