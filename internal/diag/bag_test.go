package diag

import "testing"

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevInfo, Code: InfoBlankLine, Line: uint32(i + 1)})
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
}

func TestBagInfoDoesNotCrowdOutWarnings(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 5; i++ {
		b.Add(Diagnostic{Severity: SevInfo, Code: InfoBlankLine, Line: uint32(i + 1)})
	}
	if !b.Add(Diagnostic{Severity: SevWarning, Code: WarnDuplicateTWARow, Line: 9}) {
		t.Fatalf("warning rejected after info filled the limit")
	}
	b.Add(Diagnostic{Severity: SevError, Code: ReadShortRow, Line: 10})
	if b.Add(Diagnostic{Severity: SevWarning, Code: WarnDroppedField, Line: 11}) {
		t.Fatalf("third finding stored over a limit of 2")
	}
	if b.Len() != 4 || b.Dropped() != 4 || b.Count(WarnDuplicateTWARow) != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
}

func TestNewBagClamps(t *testing.T) {
	if got := NewBag(-5).Cap(); got != 0 {
		t.Fatalf("negative max: cap=%d", got)
	}
	if got := NewBag(1 << 20).Cap(); got != ^uint16(0) {
		t.Fatalf("huge max: cap=%d", got)
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Severity: SevInfo, Code: InfoBlankLine})
	if b.HasWarnings() || b.HasErrors() {
		t.Fatalf("info must not count as warning or error")
	}
	b.Add(Diagnostic{Severity: SevWarning, Code: WarnDuplicateTWARow})
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatalf("warning state wrong")
	}
	b.Add(Diagnostic{Severity: SevError, Code: ReadShortRow})
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}
	if b.Count(WarnDuplicateTWARow) != 1 {
		t.Fatalf("Count = %d", b.Count(WarnDuplicateTWARow))
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Severity: SevInfo, Code: InfoBlankLine, Path: "a", Line: 5, Message: "x"})
	b.Add(Diagnostic{Severity: SevWarning, Code: WarnDroppedField, Path: "a", Line: 2, Message: "y"})
	b.Add(Diagnostic{Severity: SevError, Code: ReadShortRow, Path: "a", Line: 5, Message: "z"})
	b.Add(Diagnostic{Severity: SevInfo, Code: InfoBlankLine, Path: "a", Line: 5, Message: "x"})
	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("dedup: len=%d", b.Len())
	}
	b.Sort()
	items := b.Items()
	if items[0].Line != 2 || items[1].Code != ReadShortRow || items[2].Code != InfoBlankLine {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		ReadShortRow:         "E1003",
		WarnDuplicateTWARow:  "W2001",
		InfoDuplicateDropped: "I3002",
		UnknownCode:          "E0000",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
	if ReadNoRows.Title() == "" || Code(999).Title() != "Unknown" {
		t.Fatalf("titles broken")
	}
}

func TestPathReporter(t *testing.T) {
	b := NewBag(4)
	r := PathReporter{Next: BagReporter{Bag: b}, Path: "in.txt"}
	r.Warnf(WarnDotDelimiter, 3, "delimiter %q", '.')
	r.Infof(InfoBlankLine, 4, "blank")
	r.Errorf(ReadShortRow, 5, "short")
	PathReporter{}.Warnf(WarnDotDelimiter, 1, "discarded")
	if b.Len() != 3 {
		t.Fatalf("len=%d", b.Len())
	}
	d := b.Items()[0]
	if d.Path != "in.txt" || d.Line != 3 || d.Severity != SevWarning || d.Message != "delimiter '.'" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
}

func TestCodeSeverity(t *testing.T) {
	cases := map[Code]Severity{
		ReadMalformedHeader: SevError,
		WarnCacheWrite:      SevWarning,
		InfoBlankLine:       SevInfo,
		UnknownCode:         SevError,
	}
	for code, want := range cases {
		if got := code.Severity(); got != want {
			t.Errorf("%s.Severity() = %s, want %s", code, got, want)
		}
	}
}
