package main

import (
	"bufio"
	"bytes"
	"testing"

	"mailwire/internal/attr"
)

func TestParsePairs(t *testing.T) {
	attrs, err := parsePairs([]string{"msg=whoopee", "count:=4711", "empty="})
	if err != nil {
		t.Fatalf("parsePairs: %v", err)
	}
	if len(attrs) != 3 {
		t.Fatalf("got %d attributes, want 3", len(attrs))
	}
	if attrs[0].Name() != "msg" || attrs[0].Text() != "whoopee" {
		t.Fatalf("unexpected text attribute: %s=%q", attrs[0].Name(), attrs[0].Text())
	}
	n, err := attrs[1].Number()
	if err != nil || n != 4711 {
		t.Fatalf("unexpected number attribute: %d, %v", n, err)
	}
	if attrs[2].Text() != "" {
		t.Fatalf("empty value lost: %q", attrs[2].Text())
	}
}

func TestParsePairsRejectsBadInput(t *testing.T) {
	if _, err := parsePairs([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for argument without =")
	}
	if _, err := parsePairs([]string{"count:=whoopee"}); err == nil {
		t.Fatalf("expected error for non-numeric number value")
	}
}

func TestEncodeDecodePipeline(t *testing.T) {
	var wire bytes.Buffer
	encode := newRootCmd()
	encode.SetOut(&wire)
	encode.SetArgs([]string{"encode", "msg=whoopee", "count:=4711"})
	if err := encode.Execute(); err != nil {
		t.Fatalf("encode: %v", err)
	}

	attrs, err := attr.ReadList(bufio.NewReader(&wire),
		attr.Expect{Name: "msg", Kind: attr.KindText},
		attr.Expect{Name: "count", Kind: attr.KindNumber},
	)
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if attrs[0].Text() != "whoopee" {
		t.Fatalf("msg = %q", attrs[0].Text())
	}
	if n, _ := attrs[1].Number(); n != 4711 {
		t.Fatalf("count = %d", n)
	}
}
