package feature

import "testing"

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", m.At(1, 2))
	}
}

func TestFromRowsRaggedInput(t *testing.T) {
	if _, err := FromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestFromRowsEmpty(t *testing.T) {
	m, err := FromRows(nil)
	if err != nil {
		t.Fatalf("FromRows(nil): %v", err)
	}
	if m.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", m.Rows())
	}
}

func TestRowWritesThrough(t *testing.T) {
	m := NewMatrix(2, 2)
	row := m.Row(1)
	row[0] = 9

	if m.At(1, 0) != 9 {
		t.Errorf("Row mutation not visible: At(1,0) = %v, want 9", m.At(1, 0))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMatrix(1, 1)
	m.Set(0, 0, 5)

	clone := m.Clone()
	clone.Set(0, 0, 7)

	if m.At(0, 0) != 5 {
		t.Errorf("clone mutation leaked into original: %v", m.At(0, 0))
	}
}
