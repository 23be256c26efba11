package gorecord_test

import (
	"math"
	"testing"

	gorecord "github.com/reoring/gorecord"
)

func TestEqual_Matches(t *testing.T) {
	matches := []struct{ a, b any }{
		{"123", "123"},
		{"123", 123},
		{123, 123.0},
		{"123.0", 123},
		{"9223372036854775783", int64(9223372036854775783)},
		{"-5e5", -500000},
		{[]byte("foo"), "foo"},
		{map[string]any{}, map[string]any{}},
		{[]any{}, []any{}},
		{map[string]any{"foo": "bar"}, map[string]any{"foo": "bar"}},
		{[]any{map[string]any{}, "foo", 123}, []any{map[string]any{}, "foo", 123.0}},
		{
			map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "baz"}},
			map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "baz"}},
		},
	}
	for _, c := range matches {
		if err := gorecord.Equal(c.a, c.b); err != nil {
			t.Fatalf("Equal(%v, %v): unexpected error: %v", c.a, c.b, err)
		}
	}
}

func TestEqual_Mismatches(t *testing.T) {
	mismatches := []struct{ a, b any }{
		{123, 124},
		{"foo", "bar"},
		{123, "foo"},
		{123, map[string]any{}},
		{map[string]any{}, 123},
		{[]any{}, map[string]any{}},
		{"inf", math.Inf(1)},
		{9.223372036854776e+18, int64(9223372036854775783)},
		{map[string]any{"foo": "bar"}, map[string]any{"bar": "foo"}},
		{[]any{1, 2, 3}, []any{1, 2}},
		{[]any{1, 2}, []any{1, 2, 3}},
		{
			map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "baz"}},
			map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "bat"}},
		},
	}
	for _, c := range mismatches {
		if err := gorecord.Equal(c.a, c.b); err == nil {
			t.Fatalf("Equal(%v, %v): compared equal", c.a, c.b)
		}
	}
}

func TestEqual_ReportsFirstDifferencePath(t *testing.T) {
	a := map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "baz"}}
	b := map[string]any{"foo": []any{1, 2, 3}, "bar": map[string]any{"foo": "bat"}}
	err := gorecord.Equal(a, b)
	iss, ok := gorecord.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Path != "/bar/foo" {
		t.Fatalf("expected path /bar/foo, got %q", iss[0].Path)
	}
	if iss[0].Code != gorecord.CodeMismatch {
		t.Fatalf("expected structural_mismatch, got %q", iss[0].Code)
	}
}

func TestEqual_KeySetDifference(t *testing.T) {
	err := gorecord.Equal(
		map[string]any{"a": 1, "extra": 2},
		map[string]any{"a": 1},
	)
	iss, ok := gorecord.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Message != `unexpected key "extra"` {
		t.Fatalf("expected unexpected-key message, got %q", iss[0].Message)
	}

	err = gorecord.Equal(
		map[string]any{"a": 1},
		map[string]any{"a": 1, "b": 2},
	)
	iss, _ = gorecord.AsIssues(err)
	if iss[0].Message != `missing key "b"` {
		t.Fatalf("expected missing-key message, got %q", iss[0].Message)
	}
}

func TestEqual_SequenceLength(t *testing.T) {
	err := gorecord.Equal([]any{1, 2, 3}, []any{1, 2})
	iss, ok := gorecord.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Path != "/" {
		t.Fatalf("expected path /, got %q", iss[0].Path)
	}
	if iss[0].Message != "lengths differ: 3 vs 2" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}

func TestEqual_InfTextIsMalformed(t *testing.T) {
	err := gorecord.Equal("inf", math.Inf(1))
	iss, ok := gorecord.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != gorecord.CodeMalformedNumber {
		t.Fatalf("expected malformed_number, got %q", iss[0].Code)
	}
}
