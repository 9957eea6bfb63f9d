package form

import "testing"

func TestFormatResponse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "two-newline prefix stripped", input: "\n\nHello", expected: "Hello"},
		{name: "no prefix unchanged", input: "Hello", expected: "Hello"},
		{name: "prefix only yields empty string", input: "\n\n", expected: ""},
		{name: "single newline unchanged", input: "\nHello", expected: "\nHello"},
		{name: "only first prefix stripped", input: "\n\n\n\nHello", expected: "\n\nHello"},
		{name: "interior newlines preserved", input: "\n\nBook A\n\nBook B", expected: "Book A\n\nBook B"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			formatted := FormatResponse(testCase.input)
			if formatted != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, formatted)
			}
		})
	}
}
