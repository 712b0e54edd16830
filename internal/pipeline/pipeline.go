package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dannyphamv/barcode-printer/internal/model"
)

// ErrEmptyValue is returned when a submitted value is empty after trimming
var ErrEmptyValue = errors.New("barcode value is empty")

// LedgerWriteError marks the one divergent failure mode: the physical label
// printed, but the history append failed. The label exists even though the
// ledger does not know about it, so this must reach the operator as a
// warning rather than disappear into a generic failure.
type LedgerWriteError struct {
	Value string
	Cause error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("label for %q was printed but not recorded: %v", e.Value, e.Cause)
}

func (e *LedgerWriteError) Unwrap() error { return e.Cause }

// ItemFailure ties a failed batch item to its error
type ItemFailure struct {
	Value string
	Err   error
}

// BatchResult aggregates the outcome of a ReprintSelected run
type BatchResult struct {
	Printed  int
	Skipped  int
	Failures []ItemFailure
}

// Pipeline drives the generate -> print -> log sequence. It owns no files
// and keeps no label image beyond a single sequence. Sequences run strictly
// one at a time in submission order; there is no background worker.
type Pipeline struct {
	composer   Composer
	dispatcher Dispatcher
	ledger     Ledger
	now        func() time.Time

	// lastSubmitted backs the auto-submit trigger. Kept per pipeline
	// instance rather than as process-wide state.
	lastSubmitted string

	onUpdate func(*model.PrintJob) // callback for UI updates
}

// NewPipeline creates a pipeline over the given collaborators
func NewPipeline(composer Composer, dispatcher Dispatcher, ledger Ledger) *Pipeline {
	return &Pipeline{
		composer:   composer,
		dispatcher: dispatcher,
		ledger:     ledger,
		now:        time.Now,
	}
}

// SetUpdateCallback sets the callback invoked on every job status change
func (p *Pipeline) SetUpdateCallback(callback func(*model.PrintJob)) {
	p.onUpdate = callback
}

// SubmitOne runs a single generate -> print -> log sequence for value.
// A value that trims to empty is rejected up front with ErrEmptyValue and
// causes no side effects. Composer and dispatcher failures abort the
// sequence before any ledger write; only a successful print is recorded.
func (p *Pipeline) SubmitOne(value, printerName string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}

	job := model.NewPrintJob(value)
	p.notifyUpdate(job)

	err := p.run(job, printerName)
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	} else {
		job.Status = model.JobStatusCompleted
	}
	job.FinishedAt = p.now()
	p.notifyUpdate(job)

	return err
}

func (p *Pipeline) run(job *model.PrintJob, printerName string) error {
	job.Status = model.JobStatusComposing
	p.notifyUpdate(job)

	img, err := p.composer.Compose(job.Value)
	if err != nil {
		return err
	}

	job.Status = model.JobStatusPrinting
	p.notifyUpdate(job)

	if err := p.dispatcher.Send(img, printerName); err != nil {
		return err
	}

	if err := p.ledger.Append(job.Value, p.now()); err != nil {
		return &LedgerWriteError{Value: job.Value, Cause: err}
	}
	return nil
}

// ReprintSelected reruns the full sequence for each value, sequentially and
// in the caller-supplied order. Values that trim to empty are skipped, not
// counted as failures; one item's failure never stops the rest.
func (p *Pipeline) ReprintSelected(values []string, printerName string) BatchResult {
	var result BatchResult
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			result.Skipped++
			continue
		}
		if err := p.SubmitOne(value, printerName); err != nil {
			slog.Warn("pipeline: reprint item failed", "value", value, "err", err)
			result.Failures = append(result.Failures, ItemFailure{Value: value, Err: err})
			continue
		}
		result.Printed++
	}
	return result
}

// AutoSubmit submits value only when it is non-empty after trimming and
// differs from the previously observed submission. Repeated observations of
// an unchanged value (UI redraws, polling) never print twice. The returned
// bool reports whether a submission was triggered.
func (p *Pipeline) AutoSubmit(value, printerName string) (bool, error) {
	if strings.TrimSpace(value) == "" || value == p.lastSubmitted {
		return false, nil
	}
	p.lastSubmitted = value
	return true, p.SubmitOne(value, printerName)
}

// notifyUpdate calls the update callback if set
func (p *Pipeline) notifyUpdate(job *model.PrintJob) {
	if p.onUpdate != nil {
		p.onUpdate(job)
	}
}
