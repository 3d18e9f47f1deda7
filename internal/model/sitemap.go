package model

import "time"

// SlugEntry is a slug with its creation time, used to enumerate sitemap URLs.
type SlugEntry struct {
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}
