package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS hospitals (
		id       BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL UNIQUE,
		code     TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS donors (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		blood_type    TEXT NOT NULL,
		phone         TEXT NOT NULL,
		location      TEXT NOT NULL,
		last_donation DATE,
		available     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS donors_available_type_idx ON donors (available, blood_type)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id         BIGSERIAL PRIMARY KEY,
		hospital   TEXT NOT NULL,
		blood_type TEXT NOT NULL,
		units      INTEGER NOT NULL CHECK (units > 0),
		urgency    TEXT NOT NULL,
		location   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS requests_status_idx ON requests (status)`,
	`CREATE TABLE IF NOT EXISTS request_responses (
		request_id BIGINT NOT NULL REFERENCES requests(id),
		donor_id   BIGINT NOT NULL REFERENCES donors(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (request_id, donor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS donor_notifications (
		request_id BIGINT NOT NULL REFERENCES requests(id),
		donor_id   BIGINT NOT NULL REFERENCES donors(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (request_id, donor_id)
	)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}

type seedDonor struct {
	name, bloodType, phone, location, lastDonation string
	available                                      bool
}

type seedRequest struct {
	hospital, bloodType string
	units               int
	urgency, location   string
	status, createdAt   string
}

type seedHospital struct {
	name, code, location string
}

var (
	seedHospitals = []seedHospital{
		{"City General Hospital", "CGH001", "Downtown"},
		{"Northside Medical Center", "NMC002", "North Side"},
		{"East End Clinic", "EEC003", "East End"},
		{"West Side Hospital", "WSH004", "West Side"},
	}
	seedDonors = []seedDonor{
		{"John Smith", "O+", "555-1234", "Downtown", "2023-05-15", true},
		{"Maria Garcia", "A-", "555-5678", "North Side", "2023-06-10", true},
		{"David Chen", "B+", "555-8765", "East End", "2023-04-22", true},
		{"Sarah Johnson", "O-", "555-4321", "West Side", "2023-07-01", false},
		{"Robert Williams", "AB+", "555-9876", "South End", "2023-03-18", true},
	}
	seedRequests = []seedRequest{
		{"City General Hospital", "O+", 3, "High", "Downtown", "Pending", "2023-08-10T14:30:00Z"},
		{"Northside Medical Center", "A-", 2, "Medium", "North Side", "Pending", "2023-08-11T09:15:00Z"},
		{"East End Clinic", "B+", 1, "High", "East End", "Fulfilled", "2023-08-09T16:45:00Z"},
	}
)

// Seed fills empty tables with the sample data set. Tables that already
// hold rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if empty, err := tableEmpty(ctx, tx, "hospitals"); err != nil {
		return err
	} else if empty {
		for _, h := range seedHospitals {
			if _, err := tx.Exec(ctx,
				`INSERT INTO hospitals (name, code, location) VALUES ($1, $2, $3)`,
				h.name, h.code, h.location); err != nil {
				return fmt.Errorf("seed hospital %q: %w", h.name, err)
			}
		}
	}

	if empty, err := tableEmpty(ctx, tx, "donors"); err != nil {
		return err
	} else if empty {
		for _, d := range seedDonors {
			last, err := time.Parse(time.DateOnly, d.lastDonation)
			if err != nil {
				return fmt.Errorf("seed donor %q: %w", d.name, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO donors (name, blood_type, phone, location, last_donation, available)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				d.name, d.bloodType, d.phone, d.location, last, d.available); err != nil {
				return fmt.Errorf("seed donor %q: %w", d.name, err)
			}
		}
	}

	if empty, err := tableEmpty(ctx, tx, "requests"); err != nil {
		return err
	} else if empty {
		for _, r := range seedRequests {
			createdAt, err := time.Parse(time.RFC3339, r.createdAt)
			if err != nil {
				return fmt.Errorf("seed request %q: %w", r.hospital, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO requests (hospital, blood_type, units, urgency, location, status, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				r.hospital, r.bloodType, r.units, r.urgency, r.location, r.status, createdAt); err != nil {
				return fmt.Errorf("seed request %q: %w", r.hospital, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func tableEmpty(ctx context.Context, tx pgx.Tx, table string) (bool, error) {
	var exists bool
	// table names come from the constant list above, never from input
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return !exists, nil
}
