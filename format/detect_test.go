package format

import (
	"strings"
	"testing"
)

// TestDetect tests extension-based detection
func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"example1.las", LAS},
		{"EXAMPLE1.LAS", LAS},
		{"well.txt", Unknown},
		{"noextension", Unknown},
		{"archive.las.gz", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

// TestDetectFromReader tests content sniffing
func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Format
	}{
		{"section first", "~VERSION INFORMATION\n VERS.  2.0 :\n", LAS},
		{"comments then section", "# from PETREL\n#====\n~Version\n", LAS},
		{"blank lines then section", "\n\n~W\n", LAS},
		{"plain text", "hello world\n", Unknown},
		{"csv-ish", "DEPT,GR\n1670,92.5\n", Unknown},
		{"empty", "", Unknown},
		{"comments only", "# one\n# two\n", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFormatString tests Format's String and Extension methods
func TestFormatString(t *testing.T) {
	if LAS.String() != "LAS" || Unknown.String() != "Unknown" {
		t.Error("unexpected String() values")
	}
	if LAS.Extension() != ".las" || Unknown.Extension() != "" {
		t.Error("unexpected Extension() values")
	}
}
