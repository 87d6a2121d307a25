package commands

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

const DefaultPrintDelay = 300 * time.Millisecond

const receiptSurface = "receipt"

// PrintReceiptCommandHandler renders a receipt, writes it to a freshly opened
// print surface and triggers printing after a fixed delay that lets the
// surface finish loading. The trigger cannot be cancelled once scheduled.
type PrintReceiptCommandHandler struct {
	orders   OrderStore
	shop     ShopProfiles
	surfaces ports.PrintSurfaceFactory
	loc      *time.Location
	delay    time.Duration
	logger   *slog.Logger
}

func NewPrintReceiptCommandHandler(
	orders OrderStore,
	shop ShopProfiles,
	surfaces ports.PrintSurfaceFactory,
	loc *time.Location,
	delay time.Duration,
	logger *slog.Logger,
) PrintReceiptCommandHandler {
	if loc == nil {
		loc = time.Local
	}
	if delay < 0 {
		delay = DefaultPrintDelay
	}
	return PrintReceiptCommandHandler{
		orders:   orders,
		shop:     shop,
		surfaces: surfaces,
		loc:      loc,
		delay:    delay,
		logger:   logger.With("component", "receipt_printer"),
	}
}

// Handle returns once the document is on the surface; printing happens
// later. A surface that cannot be opened yields
// errs.ErrPresentationUnavailable and is not retried.
func (h PrintReceiptCommandHandler) Handle(ctx context.Context, cmd PrintReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	var document bytes.Buffer
	if err = services.RenderReceipt(&document, o, h.shop.Profile(), h.loc); err != nil {
		return err
	}

	surface, err := h.surfaces.Open(ctx, receiptSurface+"-"+o.ID())
	if err != nil {
		h.logger.WarnContext(ctx, "Print surface unavailable", "order_id", o.ID(), "error", err)
		return errs.NewPresentationUnavailableError(receiptSurface, err)
	}
	if err = surface.Write(document.Bytes()); err != nil {
		if discardErr := surface.Discard(); discardErr != nil {
			h.logger.WarnContext(ctx, "Print surface not discarded", "order_id", o.ID(), "error", discardErr)
		}
		return errs.NewPresentationUnavailableError(receiptSurface, err)
	}

	orderID := o.ID()
	time.AfterFunc(h.delay, func() {
		if printErr := surface.Print(); printErr != nil {
			h.logger.Error("Receipt print failed", "order_id", orderID, "error", printErr)
			return
		}
		h.logger.Info("Receipt printed", "order_id", orderID)
	})
	return nil
}
