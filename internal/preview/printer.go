package preview

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// PDFRenderer converts an HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PrintLog records print jobs. Implementations are best-effort.
type PrintLog interface {
	Save(ctx context.Context, j *domain.PrintJob) error
}

// Printer renders a record's preview and prints it to PDF.
type Printer struct {
	renderer *Renderer
	pdf      PDFRenderer
	log      PrintLog
	attempts int
	backoff  func(attempt int) time.Duration
}

// NewPrinter builds a printer. log may be nil.
func NewPrinter(r *Renderer, pdf PDFRenderer, log PrintLog, attempts int) *Printer {
	if attempts < 1 {
		attempts = 1
	}
	return &Printer{
		renderer: r,
		pdf:      pdf,
		log:      log,
		attempts: attempts,
		backoff:  func(i int) time.Duration { return time.Duration(1<<i) * time.Second },
	}
}

// Print renders rec without interactive controls and returns the PDF.
// Rendering is retried with exponential backoff; output that does not start
// with the PDF signature counts as a failed attempt.
func (p *Printer) Print(ctx context.Context, sessionID string, rec model.Resume) ([]byte, error) {
	start := time.Now()
	job := &domain.PrintJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Title:     rec.Name,
		Status:    domain.PrintPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: start,
		UpdatedAt: start,
	}
	if job.Title == "" {
		job.Title = "Resume"
	}

	html, err := p.renderer.RenderString(rec, nil)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}

	log := logger.With(zap.String("job_id", job.ID.String()), zap.String("session_id", sessionID))

	var pdf []byte
	var renderErr error
retry:
	for i := 0; i < p.attempts; i++ {
		job.Attempts = i + 1
		pdf, renderErr = p.pdf.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		log.Warn("print attempt failed", zap.Int("attempt", i+1), zap.Error(renderErr))
		if i < p.attempts-1 {
			select {
			case <-time.After(p.backoff(i)):
			case <-ctx.Done():
				renderErr = ctx.Err()
				break retry
			}
		}
	}

	job.UpdatedAt = time.Now()
	if renderErr != nil {
		job.Status = domain.PrintFailed
		job.Metadata["error"] = renderErr.Error()
		metrics.PrintDuration.WithLabelValues("error").Observe(metrics.MeasureDuration(start))
	} else {
		job.Status = domain.PrintCompleted
		job.SizeBytes = len(pdf)
		metrics.PrintDuration.WithLabelValues("success").Observe(metrics.MeasureDuration(start))
	}
	p.save(ctx, job)

	if renderErr != nil {
		return nil, fmt.Errorf("print failed after %d attempts: %w", job.Attempts, renderErr)
	}
	return pdf, nil
}

func (p *Printer) save(ctx context.Context, job *domain.PrintJob) {
	if p.log == nil {
		return
	}
	if err := p.log.Save(ctx, job); err != nil {
		logger.Warn("failed to save print job", zap.String("job_id", job.ID.String()), zap.Error(err))
	}
}
