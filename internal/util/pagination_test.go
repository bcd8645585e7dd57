package util

import (
	"errors"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Pagination{}
	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}
	if p.Page != DefaultPage || p.Limit != DefaultLimit || p.SortOrder != SortDesc {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestNormalizeRejectsNegatives(t *testing.T) {
	for _, p := range []Pagination{{Page: -1}, {Limit: -5}} {
		if err := p.Normalize(); !errors.Is(err, ErrInvalidPagination) {
			t.Fatalf("Normalize(%+v) = %v, want ErrInvalidPagination", p, err)
		}
	}
}

func TestNormalizeRejectsOversizedLimit(t *testing.T) {
	p := Pagination{Limit: MaxLimit + 1}
	if err := p.Normalize(); !errors.Is(err, ErrInvalidPagination) {
		t.Fatalf("Normalize() = %v, want ErrInvalidPagination", err)
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	p := Pagination{SortOrder: "ASC"}
	if err := p.Normalize(); err != nil || p.SortOrder != SortAsc {
		t.Fatalf("ASC rejected: %v %+v", err, p)
	}

	p = Pagination{SortOrder: "sideways"}
	if err := p.Normalize(); !errors.Is(err, ErrInvalidPagination) {
		t.Fatalf("invalid sortOrder accepted: %v", err)
	}
}

func TestOffset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 20}
	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}
	if got := p.Offset(); got != 40 {
		t.Fatalf("Offset() = %d, want 40", got)
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"name": "name", "createdAt": "created_at"}

	p := Pagination{OrderBy: "createdAt", SortOrder: SortAsc}
	clause, err := p.OrderClause(allowed, "created_at")
	if err != nil || clause != "created_at ASC" {
		t.Fatalf("OrderClause() = %q, %v", clause, err)
	}

	p = Pagination{SortOrder: SortDesc}
	clause, err = p.OrderClause(allowed, "created_at")
	if err != nil || clause != "created_at DESC" {
		t.Fatalf("default OrderClause() = %q, %v", clause, err)
	}

	p = Pagination{OrderBy: "score; DROP TABLE users", SortOrder: SortDesc}
	if _, err := p.OrderClause(allowed, "created_at"); !errors.Is(err, ErrInvalidOrderBy) {
		t.Fatalf("unlisted OrderBy accepted: %v", err)
	}
}
