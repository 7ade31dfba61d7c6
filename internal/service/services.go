package service

import (
	"context"
	"net/http"
	"time"

	"github.com/asymmetric-studio/site-api/internal/calc"
	"github.com/asymmetric-studio/site-api/internal/config"
	"github.com/asymmetric-studio/site-api/internal/repository"
	"github.com/rs/zerolog"
)

// ReportService defines the interface for admin aggregation
type ReportService interface {
	TrafficHistogram(ctx context.Context, now time.Time) (*TrafficReport, error)
	StreamLeadsCSV(ctx context.Context, w http.ResponseWriter) error
	GetCount(ctx context.Context, resource string) (int, error)
}

// ISAService defines the interface for the inside-sales-agent responder
type ISAService interface {
	Respond(ctx context.Context, req *ISARequest) (*ISAReply, error)
}

// ToolsService defines the interface for the calculator/quiz tools
type ToolsService interface {
	UnlockROI(ctx context.Context, email string, client ClientInfo, in calc.ROIInput) (*calc.ROIResult, error)
	CompleteQuiz(ctx context.Context, email string, client ClientInfo, answers map[string]int) (*calc.QuizResult, error)
}

// ClientInfo carries the request metadata the analytics layer stores with
// tool events.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// Services holds all service interfaces
type Services struct {
	Report ReportService
	ISA    ISAService
	Tools  ToolsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Report: newReportService(repos, log),
		ISA:    newISAService(&cfg.ISA, log),
		Tools:  newToolsService(repos, log),
	}
}
