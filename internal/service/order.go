// Package service implements the order save workflow: validate the
// draft, persist the header, persist detail records one by one, attempt
// the automatic print, then refresh the local order list.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pampa-pos/dashboard/internal/backend"
	"github.com/pampa-pos/dashboard/internal/draft"
	"github.com/pampa-pos/dashboard/internal/model"
	"go.uber.org/zap"
)

// Errors returned by the order service.
var (
	ErrEmptyCustomer    = errors.New("customer is required")
	ErrInvalidOrderType = errors.New("invalid order type")
)

// OrderRepo is the slice of the order repository the workflow needs.
type OrderRepo interface {
	Create(ctx context.Context, header backend.OrderHeader) (model.Order, error)
	Update(ctx context.Context, id int64, header backend.OrderHeader) (model.Order, error)
	Refresh(ctx context.Context) error
}

// DetailCreator persists one detail record per valid real-catalog line.
type DetailCreator interface {
	CreateDishDetail(ctx context.Context, orderID, dishID int64, quantity int) error
	CreateBeverageDetail(ctx context.Context, orderID, beverageID int64, quantity int) error
}

// AutoPrinter performs the best-effort print at creation time.
type AutoPrinter interface {
	AutoPrint(ctx context.Context, orderID int64)
}

// OrderService runs the save workflow for drafts.
type OrderService struct {
	repo    OrderRepo
	details DetailCreator
	printer AutoPrinter
	log     *zap.SugaredLogger
}

// NewOrderService creates an OrderService.
func NewOrderService(repo OrderRepo, details DetailCreator, printer AutoPrinter, log *zap.SugaredLogger) *OrderService {
	return &OrderService{repo: repo, details: details, printer: printer, log: log}
}

// SaveDraft validates and persists a draft. The header always goes
// first; detail records follow one request at a time, in sequence
// order. A detail failure aborts the save there and then — records
// already created stay created, there is no compensating rollback.
// The automatic print only runs after every detail request has been
// issued, and only for brand-new orders with auto-print enabled; its
// failure never fails the save. Finally the local order list is
// refreshed from the backend.
func (s *OrderService) SaveDraft(ctx context.Context, d *draft.Draft) (model.Order, error) {
	if err := validate(d); err != nil {
		return model.Order{}, err
	}

	header := backend.OrderHeader{
		Cliente: strings.TrimSpace(d.Customer),
		Tipo:    d.Type,
		Notas:   d.ComposedNotes(),
	}

	var (
		saved model.Order
		err   error
	)
	creating := d.EditingID == 0
	if creating {
		saved, err = s.repo.Create(ctx, header)
	} else {
		saved, err = s.repo.Update(ctx, d.EditingID, header)
	}
	if err != nil {
		return model.Order{}, err
	}

	if err := s.createDetails(ctx, saved.ID, d); err != nil {
		return model.Order{}, err
	}

	if creating && d.AutoPrint {
		s.printer.AutoPrint(ctx, saved.ID)
	}

	if err := s.repo.Refresh(ctx); err != nil {
		// The order is saved; a stale list fixes itself on the next
		// successful refresh.
		s.log.Warnw("order list refresh failed after save", "order_id", saved.ID, "error", err)
	}
	return saved, nil
}

func (s *OrderService) createDetails(ctx context.Context, orderID int64, d *draft.Draft) error {
	dishLines, err := d.DetailLines(draft.KindDish)
	if err != nil {
		return err
	}
	for i, ln := range dishLines {
		if err := s.details.CreateDishDetail(ctx, orderID, ln.CatalogID, ln.Quantity); err != nil {
			return fmt.Errorf("dish line %d: %w", i, err)
		}
	}

	beverageLines, err := d.DetailLines(draft.KindBeverage)
	if err != nil {
		return err
	}
	for i, ln := range beverageLines {
		if err := s.details.CreateBeverageDetail(ctx, orderID, ln.CatalogID, ln.Quantity); err != nil {
			return fmt.Errorf("beverage line %d: %w", i, err)
		}
	}
	return nil
}

func validate(d *draft.Draft) error {
	if strings.TrimSpace(d.Customer) == "" {
		return ErrEmptyCustomer
	}
	switch d.Type {
	case model.TypeDelivery, model.TypeThirdParty:
	default:
		return ErrInvalidOrderType
	}
	return nil
}
