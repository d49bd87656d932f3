package teamname

import "testing"

func TestStateOf(t *testing.T) {
	tests := []struct {
		team  string
		group string
		want  string
	}{
		{"Stanford", "bbm", "California"},
		{"Duke", "bbm", "North Carolina"},
		{"North Dakota State", "bbm", "North Dakota"},
		{"Green Bay", "bbm", "Wisconsin"},
		{"Washington", "bbm", "Washington"},
		{"Washington", "professional", "District of Columbia"},
		{"Carolina", "professional", "North Carolina"},
		{"Vegas", "professional", "Nevada"},
		{"", "bbm", ""},
		{"Carolina", "bbm", ""},
	}
	for _, tt := range tests {
		if got := StateOf(tt.team, tt.group); got != tt.want {
			t.Errorf("StateOf(%q, %q) = %q, want %q", tt.team, tt.group, got, tt.want)
		}
	}
}

func TestTimezoneOf(t *testing.T) {
	tests := []struct {
		team  string
		group string
		want  string
	}{
		{"Stanford", "bbm", "Pacific"},
		{"Duke", "bbm", "Eastern"},
		{"Green Bay", "bbm", "Central"},
		// Arizona plays basketball on Mountain standard time and
		// summer sports on what amounts to Pacific daylight
		{"Grand Canyon", "bbm", "Mountain"},
		{"Grand Canyon", "baseball", "Pacific"},
		{"Grand Canyon", "football", "Arizona"},
		{"Nowhere Polytechnic", "bbm", ""},
	}
	for _, tt := range tests {
		if got := TimezoneOf(tt.team, tt.group); got != tt.want {
			t.Errorf("TimezoneOf(%q, %q) = %q, want %q", tt.team, tt.group, got, tt.want)
		}
	}
}
