package itembank

import "testing"

func TestPersonalize(t *testing.T) {
	tests := []struct {
		text string
		name string
		want string
	}{
		{"I enjoy meeting new people.", "Avery Quinn", "I enjoy meeting new people."},
		{"When {name} joins a party, they talk to strangers first.", "Avery Quinn", "When Avery joins a party, they talk to strangers first."},
		{"When {name} joins a party, they talk to strangers first.", "", "When you joins a party, they talk to strangers first."},
		{"{name} and {name} again", "Jo", "Jo and Jo again"},
	}

	for _, tt := range tests {
		got := Personalize(tt.text, tt.name)
		if got != tt.want {
			t.Errorf("Personalize(%q, %q) = %q, want %q", tt.text, tt.name, got, tt.want)
		}
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Avery Quinn", "Avery"},
		{"  Jordan  ", "Jordan"},
		{"Cher", "Cher"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := FirstName(tt.name); got != tt.want {
			t.Errorf("FirstName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
