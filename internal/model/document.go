package model

import "time"

// Document is an uploaded prose text registered for readability analysis.
// The raw text lives in object storage under StoragePath; only metadata is
// kept in the database. Pure domain model, no persistence tags.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
