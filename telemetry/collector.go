package telemetry

import "log/slog"

// CollectorOptions wires the optional sinks of a Collector.
type CollectorOptions struct {
	Output    *OutputManager    // nil disables CSV output
	Bookmarks *BookmarkDetector // nil disables milestone detection
	Perf      *PerfCollector    // sampled once per day when set
	LogDays   bool              // log every day report via slog
}

// Collector is the chart sink of a run: it keeps the day series and the
// completion summary, and forwards both to logging and CSV output.
type Collector struct {
	opts CollectorOptions

	history   []DayReport
	bookmarks []Bookmark
	summary   Summary
	completed bool
}

// NewCollector creates a new collector.
func NewCollector(opts CollectorOptions) *Collector {
	return &Collector{
		opts:    opts,
		history: make([]DayReport, 0, 128),
	}
}

// ReportDay records the aggregate counts of a day boundary.
func (c *Collector) ReportDay(r DayReport) {
	c.history = append(c.history, r)

	if c.opts.LogDays {
		slog.Info("day", "report", r)
	}

	if err := c.opts.Output.WriteDay(r); err != nil {
		slog.Error("failed to write day", "error", err)
	}

	if c.opts.Perf != nil {
		perfStats := c.opts.Perf.Stats()
		if c.opts.LogDays {
			perfStats.LogStats()
		}
		if err := c.opts.Output.WritePerf(perfStats, r.Day); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	if c.opts.Bookmarks == nil {
		return
	}
	for _, bm := range c.opts.Bookmarks.Check(r) {
		c.bookmarks = append(c.bookmarks, bm)
		bm.LogBookmark()
		if err := c.opts.Output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// ReportSummary records the completion of the run.
func (c *Collector) ReportSummary(s Summary) {
	c.summary = s
	c.completed = true

	curve := c.Curve()
	slog.Info("outbreak_over",
		"summary", s,
		"peak_infected", curve.PeakInfected,
		"peak_day", curve.PeakDay,
		"attack_rate", curve.AttackRate,
		"case_fatality", curve.CaseFatality,
	)

	if err := c.opts.Output.WriteSummary(s, curve); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

// Reset clears the series for a new run. CSV output keeps appending so a
// session with several resets stays in one file.
func (c *Collector) Reset() {
	c.history = c.history[:0]
	c.bookmarks = nil
	c.summary = Summary{}
	c.completed = false
	if c.opts.Bookmarks != nil {
		c.opts.Bookmarks.Reset()
	}
}

// History returns the day series. The slice must not be modified.
func (c *Collector) History() []DayReport {
	return c.history
}

// Latest returns the most recent day report, if any.
func (c *Collector) Latest() (DayReport, bool) {
	if len(c.history) == 0 {
		return DayReport{}, false
	}
	return c.history[len(c.history)-1], true
}

// Bookmarks returns the milestones detected so far.
func (c *Collector) Bookmarks() []Bookmark {
	return c.bookmarks
}

// Summary returns the completion summary and whether the run completed.
func (c *Collector) Summary() (Summary, bool) {
	return c.summary, c.completed
}

// Curve computes statistics over the current series.
func (c *Collector) Curve() CurveStats {
	return ComputeCurve(c.history)
}
