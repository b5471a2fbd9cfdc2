package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("conf.ycf", []byte("a = 1"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("conf.ycf")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("conf.ycf", []byte("a = 2"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("conf.ycf")
	if !exists {
		t.Error("Expected file to exist after second Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// Старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "a = 1" {
		t.Errorf("Expected first file content to be 'a = 1', got %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "a = 2" {
		t.Errorf("Expected second file content to be 'a = 2', got %q", got)
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" → LineIdx = [1,3]
	id := fs.AddVirtual("a.ycf", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

// TestCRLFNormalization проверяет нормализацию CRLF
func TestCRLFNormalization(t *testing.T) {
	original := []byte("a\r\nb\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("Expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\n" {
		t.Errorf("Expected normalized content %q, got %q", "a\nb\n", string(normalized))
	}

	// Одиночные \r не трогаем
	lone := []byte("a\rb")
	out, changed := normalizeCRLF(lone)
	if changed || string(out) != "a\rb" {
		t.Errorf("Expected lone CR to be preserved, got %q (changed=%v)", string(out), changed)
	}
}

// TestBOMRemoval проверяет удаление BOM
func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("Expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}
}

// TestResolveUTF8 проверяет разрешение позиций в UTF-8 тексте
func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	content := []byte("α\n") // α = 2 байта, \n = 1 байт
	id := fs.AddVirtual("test.ycf", content)

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("Expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("Expected end 1:2, got %+v", end)
	}
}

func TestResolveMultiline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ycf", []byte("a = 1\nbb = 2\n"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},  // 'a'
		{4, LineCol{1, 5}},  // '1'
		{5, LineCol{1, 6}},  // '\n'
		{6, LineCol{2, 1}},  // 'b'
		{11, LineCol{2, 6}}, // '2'
	}
	for _, tc := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if got != tc.want {
			t.Errorf("Resolve(%d): expected %+v, got %+v", tc.off, tc.want, got)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ycf", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d): expected %q, got %q", tc.line, tc.want, got)
		}
	}
}
