package model

import (
	"reflect"
	"testing"
)

// TestSectionGet tests mnemonic lookup with duplicates
func TestSectionGet(t *testing.T) {
	s := NewSection(SectionCurve)
	s.Append(Field{Mnemonic: "DEPT", Unit: "M"})
	s.Append(Field{Mnemonic: "GR", Unit: "GAPI", Description: "run 1"})
	s.Append(Field{Mnemonic: "GR", Unit: "GAPI", Description: "run 2"})

	if got := s.Get("GR"); len(got) != 2 {
		t.Fatalf("Get(GR) returned %d fields, want 2", len(got))
	} else if got[0].Description != "run 1" || got[1].Description != "run 2" {
		t.Errorf("Get(GR) out of file order: %v", got)
	}

	if got := s.Get("MISSING"); got != nil {
		t.Errorf("Get(MISSING) = %v, want nil", got)
	}

	if f, ok := s.First("GR"); !ok || f.Description != "run 1" {
		t.Errorf("First(GR) = %+v, %v", f, ok)
	}
	if _, ok := s.First("MISSING"); ok {
		t.Error("First(MISSING) found a field")
	}

	want := []string{"DEPT", "GR", "GR"}
	if got := s.Mnemonics(); !reflect.DeepEqual(got, want) {
		t.Errorf("Mnemonics() = %v, want %v", got, want)
	}
}

// TestSectionKindString tests the String method on SectionKind
func TestSectionKindString(t *testing.T) {
	tests := []struct {
		kind SectionKind
		want string
	}{
		{SectionVersion, "Version"},
		{SectionWell, "Well"},
		{SectionCurve, "Curve"},
		{SectionParameter, "Parameter"},
		{SectionOther, "Other"},
		{SectionData, "Data"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestDataMatrixFloats tests null substitution during materialization
func TestDataMatrixFloats(t *testing.T) {
	m := NewDataMatrix(3)
	m.AppendRow(Row{{Value: 1670}, {Value: 123.45}, {Null: true}})
	m.AppendRow(Row{{Value: 1669.875}, {Null: true}, {Value: 105.6}})

	want := [][]float64{
		{1670, 123.45, -999.25},
		{1669.875, -999.25, 105.6},
	}
	if got := m.Floats(-999.25); !reflect.DeepEqual(got, want) {
		t.Errorf("Floats() = %v, want %v", got, want)
	}

	if got := m.Floats(0)[0][2]; got != 0 {
		t.Errorf("Floats(0) null cell = %v, want 0", got)
	}
}

// TestDataMatrixColumn tests per-curve access
func TestDataMatrixColumn(t *testing.T) {
	m := NewDataMatrix(2)
	m.AppendRow(Row{{Value: 1}, {Value: 10}})
	m.AppendRow(Row{{Value: 2}, {Null: true}})

	col := m.Column(1)
	if len(col) != 2 || col[0].Value != 10 || !col[1].Null {
		t.Errorf("Column(1) = %v", col)
	}
	if m.Column(2) != nil || m.Column(-1) != nil {
		t.Error("out-of-range Column should return nil")
	}
}

// TestDocumentAccessors tests the document-level helpers
func TestDocumentAccessors(t *testing.T) {
	doc := NewDocument()
	if doc.Version == nil || doc.Well == nil || doc.Curve == nil || doc.Data == nil {
		t.Fatal("mandatory sections must always be present")
	}
	if doc.Parameter != nil {
		t.Error("parameter section should be absent until the file declares one")
	}

	doc.Curve.Append(Field{Mnemonic: "DEPT"})
	doc.Curve.Append(Field{Mnemonic: "GR"})

	if got := doc.CurveNames(); !reflect.DeepEqual(got, []string{"DEPT", "GR"}) {
		t.Errorf("CurveNames() = %v", got)
	}
	if doc.CurveCount() != 2 {
		t.Errorf("CurveCount() = %d, want 2", doc.CurveCount())
	}
	if doc.Section(SectionCurve) != doc.Curve {
		t.Error("Section(SectionCurve) should return the curve section")
	}
	if doc.Section(SectionData) != nil {
		t.Error("Section(SectionData) should return nil")
	}
}
