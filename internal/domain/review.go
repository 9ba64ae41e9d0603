package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ReviewTag is one of the predefined review badges
type ReviewTag string

const (
	TagPunctual     ReviewTag = "Puntual"
	TagProfessional ReviewTag = "Profesional"
	TagFriendly     ReviewTag = "Amable"
	TagClean        ReviewTag = "Limpio"
	TagCreative     ReviewTag = "Creativo"
	TagAttentive    ReviewTag = "Atento"
)

var reviewTags = map[ReviewTag]struct{}{
	TagPunctual:     {},
	TagProfessional: {},
	TagFriendly:     {},
	TagClean:        {},
	TagCreative:     {},
	TagAttentive:    {},
}

// Review is a client's feedback on a completed booking
type Review struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	ProfessionalID string
	ClientID       string
	Rating         int
	Comment        string
	Tags           []ReviewTag
	CreatedAt      time.Time
}

// Validate checks rating, comment length and tags; duplicate tags are collapsed
func (r *Review) Validate() error {
	if r.Rating < MinReviewRating || r.Rating > MaxReviewRating {
		return ValidationError("rating must be %d..%d", MinReviewRating, MaxReviewRating)
	}

	r.Comment = strings.TrimSpace(r.Comment)
	n := utf8.RuneCountInString(r.Comment)
	if n < MinReviewCommentLength {
		return ValidationError("comment must be at least %d characters", MinReviewCommentLength)
	}
	if n > MaxReviewCommentLength {
		return ValidationError("comment exceeds %d characters", MaxReviewCommentLength)
	}

	seen := make(map[ReviewTag]struct{}, len(r.Tags))
	tags := make([]ReviewTag, 0, len(r.Tags))
	for _, t := range r.Tags {
		if _, ok := reviewTags[t]; !ok {
			return ErrUnknownReviewTag
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	r.Tags = tags
	return nil
}

// ReviewSummary aggregates a professional's reviews
type ReviewSummary struct {
	ProfessionalID string
	Count          int
	AverageRating  float64
}

// Summarize computes count and average rating rounded to one decimal
func Summarize(professionalID string, reviews []*Review) ReviewSummary {
	s := ReviewSummary{ProfessionalID: professionalID, Count: len(reviews)}
	if len(reviews) == 0 {
		return s
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	s.AverageRating = float64(int(avg*10+0.5)) / 10
	return s
}
