package catalog

import "testing"

func TestYearWord(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{0, "лет"},
		{1, "год"},
		{2, "года"},
		{4, "года"},
		{5, "лет"},
		{11, "лет"},
		{14, "лет"},
		{19, "лет"},
		{21, "год"},
		{22, "года"},
		{100, "лет"},
		{101, "год"},
		{104, "года"},
		{105, "лет"},
		{111, "лет"},
		{112, "лет"},
	}

	for _, tc := range cases {
		if got := YearWord(tc.age); got != tc.want {
			t.Errorf("YearWord(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}
