package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstDeath     BookmarkType = "first_death"
	BookmarkPeakPassed     BookmarkType = "peak_passed"
	BookmarkImmuneMajority BookmarkType = "immune_majority"
)

// Bookmark marks a milestone of the outbreak.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Day         int          `csv:"day"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"day", b.Day,
		"description", b.Description,
	)
}

// BookmarkDetector detects milestones in the day series. Each type fires
// at most once per run.
type BookmarkDetector struct {
	peakDropPercent float64
	immuneMajority  float64

	peakInfected int
	peakDay      int
	fired        map[BookmarkType]bool
}

// NewBookmarkDetector creates a detector.
// peakDropPercent: how far below the running peak the infected count must fall
// immuneMajority: immune share of the living that counts as a majority
func NewBookmarkDetector(peakDropPercent, immuneMajority float64) *BookmarkDetector {
	if immuneMajority <= 0 {
		immuneMajority = 0.5
	}
	return &BookmarkDetector{
		peakDropPercent: peakDropPercent,
		immuneMajority:  immuneMajority,
		fired:           make(map[BookmarkType]bool),
	}
}

// Reset forgets all state for a new run.
func (bd *BookmarkDetector) Reset() {
	bd.peakInfected = 0
	bd.peakDay = 0
	clear(bd.fired)
}

// Check analyzes the latest day and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(r DayReport) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFirstDeath(r); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPeakPassed(r); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkImmuneMajority(r); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if r.Infected > bd.peakInfected {
		bd.peakInfected = r.Infected
		bd.peakDay = r.Day
	}

	for _, b := range bookmarks {
		bd.fired[b.Type] = true
	}
	return bookmarks
}

func (bd *BookmarkDetector) checkFirstDeath(r DayReport) *Bookmark {
	if bd.fired[BookmarkFirstDeath] || r.Dead == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFirstDeath,
		Day:         r.Day,
		Description: fmt.Sprintf("First death with %d infected", r.Infected),
	}
}

func (bd *BookmarkDetector) checkPeakPassed(r DayReport) *Bookmark {
	if bd.fired[BookmarkPeakPassed] || bd.peakInfected == 0 {
		return nil
	}

	if r.Infected >= bd.peakInfected {
		return nil
	}
	drop := float64(bd.peakInfected-r.Infected) * 100 / float64(bd.peakInfected)
	if drop < bd.peakDropPercent {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPeakPassed,
		Day:         r.Day,
		Description: fmt.Sprintf("Infected fell %.0f%% from peak %d on day %d to %d", drop, bd.peakInfected, bd.peakDay, r.Infected),
	}
}

func (bd *BookmarkDetector) checkImmuneMajority(r DayReport) *Bookmark {
	living := r.Living()
	if bd.fired[BookmarkImmuneMajority] || living == 0 || r.Immune == 0 {
		return nil
	}

	share := float64(r.Immune) / float64(living)
	if share < bd.immuneMajority {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkImmuneMajority,
		Day:         r.Day,
		Description: fmt.Sprintf("%.0f%% of the living are immune", share*100),
	}
}
