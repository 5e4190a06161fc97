package models

import "strings"

// Book is the single stored entity. Optional fields are pointers so that
// "not provided" (nil) is distinguishable from an explicit value; nil always
// maps to SQL NULL, never to an empty string.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        *int    `json:"year"`
	ISBN        *string `json:"isbn"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// BookChanges is a partial-update payload. Only non-nil fields are applied;
// unknown JSON keys are dropped during decoding.
type BookChanges struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Year        *int    `json:"year"`
	ISBN        *string `json:"isbn"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// IsEmpty reports whether the payload carries no applicable field at all.
func (c BookChanges) IsEmpty() bool {
	return c.Title == nil && c.Author == nil && c.Year == nil &&
		c.ISBN == nil && c.Genre == nil && c.Description == nil
}

// Merged overlays the changes on an existing record and returns the result.
// The ID is never touched. Incoming strings are trimmed before the overlay,
// matching what the write path stores, so a padded value validates the same
// on update as on create. An explicit empty string clears the optional field
// (stored as NULL downstream).
func (c BookChanges) Merged(existing Book) Book {
	out := existing
	if c.Title != nil {
		out.Title = strings.TrimSpace(*c.Title)
	}
	if c.Author != nil {
		out.Author = strings.TrimSpace(*c.Author)
	}
	if c.Year != nil {
		y := *c.Year
		out.Year = &y
	}
	if c.ISBN != nil {
		out.ISBN = optString(*c.ISBN)
	}
	if c.Genre != nil {
		out.Genre = optString(*c.Genre)
	}
	if c.Description != nil {
		out.Description = optString(*c.Description)
	}
	return out
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
