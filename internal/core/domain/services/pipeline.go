package services

import (
	"context"
	"log/slog"

	"boxoffice/internal/core/domain/model/order"
)

// Outcome tells the pipeline driver whether to keep going after a stage.
type Outcome int

const (
	// Continue hands the order to the next stage.
	Continue Outcome = iota
	// Halt stops the run; the stage has already recorded the failure on the order.
	Halt
)

// Stage is a single step of order processing. A stage advances the order's
// status, does its work, and reports whether the run may continue. Business
// failures are recorded on the order itself via Fail before returning Halt.
type Stage interface {
	Name() string
	Process(ctx context.Context, o *order.Order) Outcome
}

// Pipeline is a domain service that drives an order through the fixed
// sequence of processing stages.
//
// Key responsibilities:
//   - Running stages in their configured order
//   - Stopping the run as soon as a stage halts
//   - Never invoking a stage on an order that has already failed
//
// Business rules:
//   - Stage order is fixed at construction time
//   - A halted run leaves the order in Failed with a diagnostic message
//   - A full run leaves the order in Completed
//
// Example usage:
//
//	pipeline := services.NewPipeline(logger, stages...)
//	o, _ := order.NewOrder(id, tickets, concessions, "card", "CINE20")
//
//	if err := pipeline.Submit(ctx, o); err != nil {
//	    // The order itself was invalid; no stage ran.
//	    return
//	}
//	if o.Status() == order.Failed {
//	    // Inspect o.ErrorMessage() for the halting stage's diagnostic.
//	}
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

// NewPipeline creates a Pipeline that runs the given stages in order.
func NewPipeline(logger *slog.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
		logger: logger.With("component", "pipeline"),
	}
}

// NewDefaultPipeline wires the canonical stage sequence: stock validation,
// price and tax calculation, discount application, payment processing,
// ticket generation and inventory update.
func NewDefaultPipeline(
	logger *slog.Logger,
	checker AvailabilityChecker,
	gateway PaymentGateway,
	issuer TicketIssuer,
	committer StockCommitter,
) *Pipeline {
	return NewPipeline(logger,
		NewStockValidationStage(checker),
		NewPriceAndTaxCalculationStage(),
		NewDiscountApplicationStage(),
		NewPaymentProcessingStage(gateway),
		NewTicketGenerationStage(issuer),
		NewInventoryUpdateStage(committer),
	)
}

// Submit runs the order through every stage until one halts.
//
// Parameters:
//   - ctx: Context for the external calls the stages make
//   - o: The order to process (must be valid and Pending)
//
// Returns:
//   - error: A validation error if the order cannot enter the pipeline;
//     processing failures are recorded on the order, not returned
func (p *Pipeline) Submit(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	p.logger.Info("processing order", "order_id", o.ID().String(), "status", o.Status().String())

	for _, stage := range p.stages {
		// Failed is absorbing: no stage runs once the order has failed,
		// even if the halting stage forgot to stop the run.
		if o.Status() == order.Failed {
			break
		}

		p.logger.Info("running stage", "order_id", o.ID().String(), "stage", stage.Name())

		if stage.Process(ctx, o) == Halt {
			p.logger.Warn("stage halted processing",
				"order_id", o.ID().String(),
				"stage", stage.Name(),
				"status", o.Status().String(),
				"error", o.ErrorMessage(),
			)
			break
		}
	}

	p.logger.Info("processing finished", "order_id", o.ID().String(), "status", o.Status().String())

	return nil
}
