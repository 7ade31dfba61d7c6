package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/rs/zerolog"
)

// HistogramDays is the traffic window shown on the admin dashboard
const HistogramDays = 7

// TrafficReport is the display-ready 7-day traffic histogram. Buckets run
// oldest-first, so Counts[6] is today and Counts[0] is seven days ago. Max
// never drops below 1 so bar heights can be computed as count/max.
type TrafficReport struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Max    int      `json:"max"`
}

// reportService is the concrete implementation of ReportService
type reportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newReportService creates a new ReportService
func newReportService(repos *repository.Repositories, log zerolog.Logger) *reportService {
	return &reportService{
		repos: repos,
		log:   log.With().Str("service", "report").Logger(),
	}
}

// TrafficHistogram buckets analytics events by calendar-day distance from
// now. An event lands in bucket days-ago where days-ago is the rounded-up
// day difference; exactly seven days old goes into the oldest bucket,
// anything older is discarded.
func (s *reportService) TrafficHistogram(ctx context.Context, now time.Time) (*TrafficReport, error) {
	events, err := s.repos.Analytics.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]int, HistogramDays)
	labels := make([]string, HistogramDays)
	for i := 0; i < HistogramDays; i++ {
		labels[i] = now.AddDate(0, 0, -(HistogramDays - 1 - i)).Weekday().String()[:3]
	}

	for _, e := range events {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			s.log.Warn().Str("id", e.ID).Str("timestamp", e.Timestamp).Msg("Skipping event with unparseable timestamp")
			continue
		}
		diff := now.Sub(ts)
		if diff < 0 {
			diff = -diff
		}
		daysAgo := int(math.Ceil(diff.Hours() / 24))
		if daysAgo == 0 {
			// An event recorded this instant counts as today
			daysAgo = 1
		}
		if daysAgo > HistogramDays {
			continue
		}
		counts[HistogramDays-daysAgo]++
	}

	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	return &TrafficReport{Labels: labels, Counts: counts, Max: max}, nil
}

// StreamLeadsCSV writes the leads export. Columns: ID, Email, Source, Date
// (UTC ISO), Data (JSON with commas replaced by semicolons so the value
// stays in one column). The format is deliberately unquoted; consumers
// already parse it that way.
func (s *reportService) StreamLeadsCSV(ctx context.Context, w http.ResponseWriter) error {
	leads, err := s.repos.Leads.List(ctx)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=leads_export.csv")

	if _, err := fmt.Fprintln(w, "ID,Email,Source,Date,Data"); err != nil {
		return err
	}

	for _, l := range leads {
		date := l.Timestamp
		if ts, err := time.Parse(time.RFC3339, l.Timestamp); err == nil {
			date = ts.UTC().Format(time.RFC3339)
		}

		data, err := json.Marshal(l.Data)
		if err != nil {
			return fmt.Errorf("marshal lead data: %w", err)
		}
		row := strings.Join([]string{
			l.ID,
			l.Email,
			l.Source,
			date,
			strings.ReplaceAll(string(data), ",", ";"),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	s.log.Info().Int("count", len(leads)).Msg("Leads export completed")
	return nil
}

// GetCount returns the number of records in a collection
func (s *reportService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "posts":
		records, err := s.repos.Posts.List(ctx)
		return len(records), err
	case "leads":
		records, err := s.repos.Leads.List(ctx)
		return len(records), err
	case "analytics":
		records, err := s.repos.Analytics.List(ctx)
		return len(records), err
	case "users":
		records, err := s.repos.Users.List(ctx)
		return len(records), err
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}
