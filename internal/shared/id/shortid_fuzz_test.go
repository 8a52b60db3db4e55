package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParsePrefixedID(f *testing.F) {
	seeds := []string{
		"ord_xK9mP2vL3nQ",
		"cus_abc123",
		"prd_test",
		"",
		"nounderscore",
		"_leadingunderscore",
		"trailing_",
		"multiple_under_scores_here",
		"a_b",
		"*_special",
		strings.Repeat("a", 1000) + "_" + strings.Repeat("b", 1000),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)

		if !strings.Contains(input, "_") {
			if err == nil {
				t.Errorf("ParsePrefixedID(%q) should return error for input without underscore", input)
			}
			return
		}

		if err == nil {
			if !strings.HasPrefix(input, prefix+"_") {
				t.Errorf("ParsePrefixedID(%q) returned prefix=%q which doesn't match input", input, prefix)
			}
			parts := strings.SplitN(input, "_", 2)
			if len(parts) == 2 && shortID != parts[1] {
				t.Errorf("ParsePrefixedID(%q) returned shortID=%q, expected %q", input, shortID, parts[1])
			}
		}
	})
}

func FuzzGenerate(f *testing.F) {
	for _, l := range []int{0, 1, 2, 5, 12, 50, 100} {
		f.Add(l)
	}

	f.Fuzz(func(t *testing.T, length int) {
		result, err := Generate(length)
		if err != nil {
			t.Errorf("Generate(%d) returned error: %v", length, err)
			return
		}

		expectedLen := length
		if expectedLen <= 0 {
			expectedLen = DefaultLength
		}
		if len(result) != expectedLen {
			t.Errorf("Generate(%d) returned string of length %d, expected %d", length, len(result), expectedLen)
		}

		for _, c := range result {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) returned invalid character %q", length, c)
			}
		}
	})
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		sid, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[sid] {
			t.Errorf("Generate produced duplicate ID: %s", sid)
		}
		seen[sid] = true
	}
}

func TestNewSIDFormats(t *testing.T) {
	tests := []struct {
		name      string
		generator func() (string, error)
		prefix    string
	}{
		{"Order", NewOrderSID, PrefixOrder},
		{"Customer", NewCustomerSID, PrefixCustomer},
		{"Product", NewProductSID, PrefixProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sid, err := tt.generator()
			if err != nil {
				t.Fatalf("generator failed: %v", err)
			}

			if !strings.HasPrefix(sid, tt.prefix+"_") {
				t.Errorf("generated ID %q doesn't have expected prefix %q_", sid, tt.prefix)
			}

			parsedPrefix, shortID, err := ParsePrefixedID(sid)
			if err != nil {
				t.Errorf("failed to parse generated ID %q: %v", sid, err)
			}
			if parsedPrefix != tt.prefix {
				t.Errorf("parsed prefix %q doesn't match expected %q", parsedPrefix, tt.prefix)
			}
			if len(shortID) != DefaultLength {
				t.Errorf("short ID length %d doesn't match default %d", len(shortID), DefaultLength)
			}
		})
	}
}
