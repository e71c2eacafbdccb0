package core

import "testing"

// TestClassifyLine tests classification of raw lines
func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind LineKind
		wantCode SectionCode
	}{
		{"empty line", "", LineBlank, CodeNone},
		{"whitespace only", "   \t  ", LineBlank, CodeNone},
		{"comment", "# a comment", LineComment, CodeNone},
		{"indented comment", "   # still a comment", LineComment, CodeNone},
		{"version header", "~VERSION INFORMATION", LineSection, CodeVersion},
		{"well header", "~WELL INFORMATION", LineSection, CodeWell},
		{"curve header", "~CURVE INFORMATION", LineSection, CodeCurve},
		{"parameter header", "~PARAMETER INFORMATION", LineSection, CodeParameter},
		{"other header", "~OTHER", LineSection, CodeOther},
		{"data header", "~A  DEPTH DT RHOB", LineSection, CodeData},
		{"lowercase code", "~well Information", LineSection, CodeWell},
		{"indented header", "  ~Version", LineSection, CodeVersion},
		{"unknown code", "~X VENDOR EXTENSION", LineSection, CodeUnknown},
		{"bare tilde", "~", LineSection, CodeUnknown},
		{"content", " VERS.  2.0 : CWLS", LineContent, CodeNone},
		{"numeric content", "1670.000 123.450", LineContent, CodeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, code := ClassifyLine(tt.line)
			if kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if code != tt.wantCode {
				t.Errorf("code = %v, want %v", code, tt.wantCode)
			}
		})
	}
}

// TestLineKindString tests the String method on LineKind
func TestLineKindString(t *testing.T) {
	tests := []struct {
		kind LineKind
		want string
	}{
		{LineBlank, "Blank"},
		{LineComment, "Comment"},
		{LineSection, "Section"},
		{LineContent, "Content"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestSectionCodeString tests the String method on SectionCode
func TestSectionCodeString(t *testing.T) {
	tests := []struct {
		code SectionCode
		want string
	}{
		{CodeNone, "None"},
		{CodeVersion, "Version"},
		{CodeWell, "Well"},
		{CodeCurve, "Curve"},
		{CodeParameter, "Parameter"},
		{CodeOther, "Other"},
		{CodeData, "Data"},
		{CodeUnknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
