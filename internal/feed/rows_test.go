package feed

import "testing"

func TestParseRows_Basic(t *testing.T) {
	rows := ParseRows("a,b,c\n1,2,3\n4,5,6\n", ',')
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["a"] != "1" || rows[0]["b"] != "2" || rows[0]["c"] != "3" {
		t.Errorf("row 0 mismatch: %v", rows[0])
	}
	if rows[1]["c"] != "6" {
		t.Errorf("row 1 mismatch: %v", rows[1])
	}
}

func TestParseRows_StripsBOM(t *testing.T) {
	rows := ParseRows("\ufeffpitch_type,zone\nFF,5\n", ',')
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["pitch_type"] != "FF" {
		t.Errorf("BOM leaked into first header: %v", rows[0])
	}
}

func TestParseRows_QuotedDelimiter(t *testing.T) {
	rows := ParseRows("name,team\n\"Judge, Aaron\",NYY\n", ',')
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["name"] != "Judge, Aaron" {
		t.Errorf("quoted comma not preserved: %q", rows[0]["name"])
	}
}

func TestParseRows_DoubledQuoteEscape(t *testing.T) {
	rows := ParseRows("label,n\n\"the \"\"kid\"\"\",1\n", ',')
	if rows[0]["label"] != `the "kid"` {
		t.Errorf("doubled quote not unescaped: %q", rows[0]["label"])
	}
}

func TestParseRows_ShortRowPadsEmpty(t *testing.T) {
	rows := ParseRows("a,b,c\n1,2\n", ',')
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["c"] != "" {
		t.Errorf("missing trailing field should be empty, got %q", rows[0]["c"])
	}
}

func TestParseRows_SkipsBlankLines(t *testing.T) {
	rows := ParseRows("a,b\n1,2\n\n   \n3,4\n", ',')
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestParseRows_HeaderOnlyIsEmpty(t *testing.T) {
	if rows := ParseRows("a,b,c\n", ','); rows != nil {
		t.Errorf("header-only body should yield no rows, got %v", rows)
	}
	if rows := ParseRows("", ','); rows != nil {
		t.Errorf("empty body should yield no rows, got %v", rows)
	}
}

func TestParseRows_Semicolons(t *testing.T) {
	rows := ParseRows("a;b\n1;2\n", ';')
	if rows[0]["b"] != "2" {
		t.Errorf("semicolon dialect broken: %v", rows[0])
	}
}

func TestDetectDelimiter(t *testing.T) {
	if d := DetectDelimiter("a;b;c\n1;2;3"); d != ';' {
		t.Errorf("expected ';', got %q", d)
	}
	if d := DetectDelimiter("a,b,c\n1,2,3"); d != ',' {
		t.Errorf("expected ',', got %q", d)
	}
	// Commas win when both appear: the comma dialect quotes its semicolons.
	if d := DetectDelimiter("a,b;c\n"); d != ',' {
		t.Errorf("expected ',', got %q", d)
	}
}
