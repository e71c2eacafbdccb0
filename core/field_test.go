package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/lasio/model"
)

// TestParseField tests header field decomposition
func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Field
	}{
		{
			"unit value description",
			"RHOB.K/M3  2550.0 : Bulk Density",
			model.Field{Mnemonic: "RHOB", Unit: "K/M3", Value: "2550.0", Description: "Bulk Density"},
		},
		{
			"empty description",
			"STRT.M  1670.0000 :",
			model.Field{Mnemonic: "STRT", Unit: "M", Value: "1670.0000"},
		},
		{
			"no colon at all",
			"STRT.M  1670.0000",
			model.Field{Mnemonic: "STRT", Unit: "M", Value: "1670.0000"},
		},
		{
			"empty unit",
			"NULL.   -999.25 : NULL VALUE",
			model.Field{Mnemonic: "NULL", Value: "-999.25", Description: "NULL VALUE"},
		},
		{
			"leading-dot value not read as unit",
			"STRT.   .0000 : START",
			model.Field{Mnemonic: "STRT", Value: ".0000", Description: "START"},
		},
		{
			"value containing colons",
			"TIME.  13:37:00 25-DEC-1988 : LOG TIME",
			model.Field{Mnemonic: "TIME", Value: "13:37:00 25-DEC-1988", Description: "LOG TIME"},
		},
		{
			"mnemonic padded before dot",
			"STRT    .M              1670.0000                :START DEPTH",
			model.Field{Mnemonic: "STRT", Unit: "M", Value: "1670.0000", Description: "START DEPTH"},
		},
		{
			"value containing dots",
			"COMP.  ANY OIL COMPANY LTD. : COMPANY",
			model.Field{Mnemonic: "COMP", Value: "ANY OIL COMPANY LTD.", Description: "COMPANY"},
		},
		{
			"unit with no trailing text",
			"DEPT.M",
			model.Field{Mnemonic: "DEPT", Unit: "M"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(tt.line, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseField(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

// TestParseFieldSyntaxError tests rejection of lines without a '.' separator
func TestParseFieldSyntaxError(t *testing.T) {
	_, err := ParseField("BADLINE without dot", 42)
	if err == nil {
		t.Fatal("expected error for line without '.'")
	}
	if !errors.Is(err, ErrFieldSyntax) {
		t.Errorf("error = %v, want ErrFieldSyntax", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T does not carry position info", err)
	}
	if perr.Line != 42 {
		t.Errorf("Line = %d, want 42", perr.Line)
	}
	if perr.Text != "BADLINE without dot" {
		t.Errorf("Text = %q, want the raw line", perr.Text)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Errorf("message %q does not mention the line number", err.Error())
	}
}
