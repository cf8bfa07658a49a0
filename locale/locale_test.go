package locale

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Code
		wantErr bool
	}{
		{name: "bare language", in: "en", want: "en"},
		{name: "uppercase language normalized", in: "EN", want: "en"},
		{name: "region with dash", in: "en-US", want: "en_US"},
		{name: "region with underscore", in: "pt_br", want: "pt_BR"},
		{name: "three letters rejected", in: "eng", wantErr: true},
		{name: "one letter rejected", in: "e", wantErr: true},
		{name: "digits rejected", in: "e1", wantErr: true},
		{name: "bad separator position", in: "enUS_", wantErr: true},
		{name: "digit region rejected", in: "en_U1", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "six characters rejected", in: "en_USA", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	if got := Code("en_US").Language(); got != "en" {
		t.Fatalf("Language() = %q, want en", got)
	}
	if got := Code("ru").Language(); got != "ru" {
		t.Fatalf("Language() = %q, want ru", got)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want string
	}{
		{code: "ru", want: "Русский"},
		{code: "en_US", want: "English (US)"},
		{code: "de_AT", want: "Deutsch"}, // region falls back to base language
		{code: "xx", want: "xx"},         // unknown stays as-is
	}

	for _, tc := range tests {
		if got := tc.code.Name(); got != tc.want {
			t.Fatalf("Name(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
