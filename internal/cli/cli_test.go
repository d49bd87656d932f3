package cli

import (
	"reflect"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()
	want := map[string]bool{"analyze": false, "fetch": false, "team": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestTeamArgValidation(t *testing.T) {
	cmd := newTeamCmd()
	if err := cmd.Args(cmd, []string{"bbm", "D1"}); err == nil {
		t.Error("two arguments should be rejected")
	}
	if err := cmd.Args(cmd, []string{"bbm", "D1", "Duke"}); err != nil {
		t.Errorf("three arguments rejected: %v", err)
	}
}

func TestAnchor(t *testing.T) {
	if got := anchor(3, "below", "above"); got != "below" {
		t.Errorf("odd diff anchor = %q", got)
	}
	if got := anchor(-2, "below", "above"); got != "above" {
		t.Errorf("even diff anchor = %q", got)
	}
}

func TestSortedDiffs(t *testing.T) {
	got := sortedDiffs(map[int]int{3: 1, -5: 2, 0: 4})
	if want := []int{-5, 0, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("sortedDiffs = %v, want %v", got, want)
	}
	if got := total(map[int]int{3: 1, -5: 2}); got != 3 {
		t.Errorf("total = %d, want 3", got)
	}
}
