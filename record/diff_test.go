package record_test

import (
	"context"
	"testing"

	"github.com/reoring/gorecord/record"
)

func TestDiff_ModifiedFields(t *testing.T) {
	ctx := context.Background()
	typ := cupboardType(t)
	a, err := typ.Construct(ctx, cheesePrimitive())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := cheesePrimitive()
	other["name"] = "Cellar"
	other["cheeses"].([]any)[1].(map[string]any)["smelliness"] = "83"
	b, err := typ.Construct(ctx, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := record.Diff(a, b, record.DefaultDiffOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	if entries[0].Kind != record.DiffModified || entries[0].Path != "/name" {
		t.Fatalf("unexpected first entry: %v", entries[0])
	}
	if entries[1].Kind != record.DiffModified || entries[1].Path != "/cheeses/1/smelliness" {
		t.Fatalf("unexpected second entry: %v", entries[1])
	}
	if entries[1].Base != 82.0 || entries[1].Other != 83.0 {
		t.Fatalf("unexpected values: %v", entries[1])
	}
}

func TestDiff_AddedAndRemoved(t *testing.T) {
	ctx := context.Background()
	typ := cupboardType(t)
	base := cheesePrimitive()
	delete(base, "name")
	a, err := typ.Construct(ctx, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := cheesePrimitive()
	other["cheeses"] = other["cheeses"].([]any)[:2]
	b, err := typ.Construct(ctx, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := record.Diff(a, b, record.DefaultDiffOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	if entries[0].Kind != record.DiffAdded || entries[0].Path != "/name" {
		t.Fatalf("unexpected first entry: %v", entries[0])
	}
	if entries[1].Kind != record.DiffRemoved || entries[1].Path != "/cheeses/2" {
		t.Fatalf("unexpected second entry: %v", entries[1])
	}
}

func TestDiff_NormalizationOptions(t *testing.T) {
	ctx := context.Background()
	typ := record.NewType("Note").
		Field("text", record.String()).
		MustBuild()
	a, err := typ.Construct(ctx, map[string]any{"text": "hello   world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := typ.Construct(ctx, map[string]any{"text": "Hello World"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := record.Diff(a, b, record.DefaultDiffOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != record.DiffModified {
		t.Fatalf("expected case difference to be modified, got %v", entries)
	}

	opts := record.DefaultDiffOptions()
	opts.IgnoreCase = true
	entries, err = record.Diff(a, b, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries with case folding, got %v", entries)
	}

	opts.IncludeUnchanged = true
	entries, err = record.Diff(a, b, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != record.DiffUnchanged {
		t.Fatalf("expected unchanged entry, got %v", entries)
	}
}

func TestDiff_DifferentTypesRejected(t *testing.T) {
	ctx := context.Background()
	a, err := cupboardType(t).Construct(ctx, cheesePrimitive())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := record.NewType("Other").Field("id", record.Int()).MustBuild()
	b, err := other.Construct(ctx, map[string]any{"id": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := record.Diff(a, b, record.DefaultDiffOptions()); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}
