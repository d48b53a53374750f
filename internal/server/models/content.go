package models

import "time"

type Content struct {
	ID        int64
	URL       string
	Title     string
	UserID    int64
	CreatedAt time.Time
}

// RankedContent is a scored front-page row. Score is derived at read time
// from the vote ledger, never stored.
type RankedContent struct {
	ID        int64
	URL       string
	Title     string
	Author    string
	Score     int64
	CreatedAt time.Time
}
