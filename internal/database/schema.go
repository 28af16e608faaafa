package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema statements are idempotent; EnsureSchema runs on every startup so
// a fresh database becomes usable without a separate migration step.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name          VARCHAR(120)    NOT NULL,
		email         VARCHAR(190)    NOT NULL,
		password_hash VARCHAR(100)    NOT NULL,
		role          ENUM('user','admin') NOT NULL DEFAULT 'user',
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY users_email_unique (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS facilities (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(190)    NOT NULL,
		description TEXT            NOT NULL,
		image_url   VARCHAR(500)    NOT NULL DEFAULT '',
		category    ENUM('ride','water','family','show','dining','other') NOT NULL DEFAULT 'ride',
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		facility_id BIGINT UNSIGNED NOT NULL,
		type        VARCHAR(120)    NOT NULL,
		price       DECIMAL(10,2)   NOT NULL,
		description TEXT            NOT NULL,
		available   BIGINT          NOT NULL DEFAULT 0,
		sold        BIGINT          NOT NULL DEFAULT 0,
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY tickets_facility (facility_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id       BIGINT UNSIGNED NOT NULL,
		ticket_id     BIGINT UNSIGNED NOT NULL,
		facility_name VARCHAR(190)    NOT NULL,
		type          VARCHAR(120)    NOT NULL,
		price         DECIMAL(10,2)   NOT NULL,
		quantity      BIGINT          NOT NULL,
		total         DECIMAL(12,2)   NOT NULL,
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY purchases_user (user_id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the four application tables when absent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
