package service

import (
	"context"
	"errors"
	"testing"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/testutil"
	"lsv_backend/internal/util"
)

func TestLanguageCRUD(t *testing.T) {
	db := testutil.DB(t)
	// Redis is optional for the catalog; nil disables the cache.
	svc := NewLanguageService(repository.NewLanguageRepository(db), nil)

	created, err := svc.CreateLanguage(LanguageReq{Name: "LSV", Description: "Venezuelan Sign Language"})
	if err != nil {
		t.Fatalf("CreateLanguage() returned error: %v", err)
	}

	updated, err := svc.UpdateLanguage(created.ID, LanguageReq{Name: "LSV", Description: "updated"})
	if err != nil {
		t.Fatalf("UpdateLanguage() returned error: %v", err)
	}
	if updated.Description != "updated" {
		t.Fatalf("description = %q, want %q", updated.Description, "updated")
	}

	languages, total, err := svc.GetLanguages(context.Background(), util.Pagination{})
	if err != nil {
		t.Fatalf("GetLanguages() returned error: %v", err)
	}
	if total != 1 || len(languages) != 1 {
		t.Fatalf("total = %d, page = %d, want 1 and 1", total, len(languages))
	}

	if err := svc.DeleteLanguage(created.ID); err != nil {
		t.Fatalf("DeleteLanguage() returned error: %v", err)
	}
	if _, err := svc.GetLanguageByID(created.ID); !errors.Is(err, util.ErrLanguageNotFound) {
		t.Fatalf("deleted language lookup = %v, want ErrLanguageNotFound", err)
	}
}

func TestUpdateLanguageUnknown(t *testing.T) {
	db := testutil.DB(t)
	svc := NewLanguageService(repository.NewLanguageRepository(db), nil)

	if _, err := svc.UpdateLanguage(model.GenerateUUID(), LanguageReq{Name: "x"}); !errors.Is(err, util.ErrLanguageNotFound) {
		t.Fatalf("UpdateLanguage(unknown) = %v, want ErrLanguageNotFound", err)
	}
}
