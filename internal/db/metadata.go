//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldmart/goldmart/internal/logging"
	"github.com/goldmart/goldmart/pkg/version"
)

const metadataTable = "goldmart_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS goldmart_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SeedInfo describes the parameters a database was seeded with.
type SeedInfo struct {
	Customers int
	Products  int
	Orders    int
	Seed      uint64
}

// SaveMetadata records initialization metadata in the database.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, info SeedInfo) error {
	// Create table if it doesn't exist
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	// Insert or update metadata
	metadata := map[string]string{
		"version":        version.Short(),
		"initialized_at": time.Now().UTC().Format(time.RFC3339),
		"customers":      strconv.Itoa(info.Customers),
		"products":       strconv.Itoa(info.Products),
		"orders":         strconv.Itoa(info.Orders),
		"seed":           strconv.FormatUint(info.Seed, 10),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO goldmart_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Int("customers", info.Customers).
		Int("products", info.Products).
		Int("orders", info.Orders).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM goldmart_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM goldmart_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}

// MetadataExists checks if the metadata table exists in the current schema.
func MetadataExists(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_schema = current_schema()
              AND table_name = $1
        )
    `, metadataTable).Scan(&exists)
	return exists, err
}
