// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !errors.Is(err, ErrNilDB) {
		t.Errorf("expected ErrNilDB, got: %v", err)
	}
}

func TestEmbeddedMigrations_CreateAllTables(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, "00001_init.sql")
	if err != nil {
		t.Fatalf("init migration is not embedded: %v", err)
	}

	sqlText := string(data)
	for _, table := range []string{
		"users", "sessions", "ingredients", "user_ingredients",
		"recipes", "recipe_tags", "recipe_cache",
	} {
		if !strings.Contains(sqlText, "CREATE TABLE IF NOT EXISTS "+table+"\n") {
			t.Errorf("table %q is not created by the init migration", table)
		}
	}

	if !strings.Contains(sqlText, "-- +goose Down") {
		t.Error("init migration has no down section")
	}
}
