package model

import "time"

// Transcript is the single persisted entity: a titled piece of transcribed
// text with its creation time. Rows are never updated in place.
type Transcript struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
