package parser

import (
	"bytes"
	"testing"

	"polarconv/internal/diag"
	"polarconv/internal/source"
)

func fileFrom(t *testing.T, name, content string) *source.File {
	t.Helper()
	sf, err := source.FromBytes(name, []byte(content), source.EncodingUTF8)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	return sf
}

func bagOptions() (Options, *diag.Bag) {
	bag := diag.NewBag(64)
	return Options{Reporter: diag.BagReporter{Bag: bag}}, bag
}

func echoOptions() (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	return Options{Echo: &buf}, &buf
}
