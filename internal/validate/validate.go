// Package validate holds the pure field-constraint checks for book records.
// No I/O: every violation is reported through the returned error and mapped
// to a 400 by the handler layer.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/models"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

const (
	MaxTitleLen       = 500
	MaxAuthorLen      = 200
	MaxGenreLen       = 100
	MaxDescriptionLen = 5000
)

var (
	isbn10Re     = regexp.MustCompile(`^\d{10}$`)
	isbn13Re     = regexp.MustCompile(`^\d{13}$`)
	isbnHyphenRe = regexp.MustCompile(`^[\d-]{13,17}$`)
)

// MaxYear is the upper bound for the year field: ten years past the current
// year, so forthcoming titles can be recorded.
func MaxYear() int { return time.Now().Year() + 10 }

// Book checks every present field of the candidate against its constraint
// and returns the first violation, in field order: title, author, year,
// isbn, description, genre. In create mode, title and author must be
// present and non-empty. In update mode the caller passes the merged record
// (existing fields overlaid with the proposed changes), so combined values
// are validated, not just the delta.
func Book(b *models.Book, mode Mode) error {
	title := strings.TrimSpace(b.Title)
	author := strings.TrimSpace(b.Author)

	switch {
	case title == "" && author == "":
		if mode == ModeCreate {
			return apperr.Validation("title and author are required")
		}
		return apperr.Validation("title must not be empty")
	case title == "":
		if mode == ModeCreate {
			return apperr.Validation("title is required")
		}
		return apperr.Validation("title must not be empty")
	case author == "":
		if mode == ModeCreate {
			return apperr.Validation("author is required")
		}
		return apperr.Validation("author must not be empty")
	}

	if utf8.RuneCountInString(title) > MaxTitleLen {
		return apperr.Validation("title must be at most " + strconv.Itoa(MaxTitleLen) + " characters")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLen {
		return apperr.Validation("author must be at most " + strconv.Itoa(MaxAuthorLen) + " characters")
	}
	if b.Year != nil {
		if *b.Year < 0 || *b.Year > MaxYear() {
			return apperr.Validation("year must be between 0 and " + strconv.Itoa(MaxYear()))
		}
	}
	if isbn := deref(b.ISBN); isbn != "" {
		if !ValidISBN(isbn) {
			return apperr.Validation("isbn must be a 10 or 13 digit ISBN, hyphens allowed")
		}
	}
	if desc := deref(b.Description); desc != "" {
		if utf8.RuneCountInString(desc) > MaxDescriptionLen {
			return apperr.Validation("description must be at most " + strconv.Itoa(MaxDescriptionLen) + " characters")
		}
	}
	if genre := deref(b.Genre); genre != "" {
		if utf8.RuneCountInString(genre) > MaxGenreLen {
			return apperr.Validation("genre must be at most " + strconv.Itoa(MaxGenreLen) + " characters")
		}
	}
	return nil
}

// ValidISBN accepts ISBN-10 (10 digits), ISBN-13 (13 digits), or a
// hyphenated variant of 13-17 characters made of digits and hyphens.
// No checksum verification.
func ValidISBN(s string) bool {
	return isbn10Re.MatchString(s) || isbn13Re.MatchString(s) || isbnHyphenRe.MatchString(s)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
