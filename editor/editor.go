// Package editor implements the order/booking editing workflow: an order
// and its line items are loaded for viewing, header fields can be edited
// in place, and items can be added or removed with the backend repricing
// the order after every mutation. Totals computed here are advisory
// display values; the backend's persisted totals are authoritative.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/pricing"
)

// Editor states
const (
	StateClosed  = "closed"
	StateViewing = "viewing"
	StateEditing = "editing"
)

// ErrBusy is returned when a mutation is attempted while another request
// is still in flight. The guard prevents double submission; it is not a
// lock on the backend.
var ErrBusy = errors.New("a request is already in flight")

// Editor drives one order's viewing/editing lifecycle
type Editor struct {
	api *client.Client

	state   string
	order   *models.Order
	items   []models.OrderItem
	catalog []models.Offering
	draft   client.OrderHeaderParams

	busy   bool
	notice string

	// OnOrdersChanged, when set, is invoked after any item mutation so the
	// owning list screen can reload its backend-recomputed rows.
	OnOrdersChanged func()
}

// New creates a closed editor talking through api
func New(api *client.Client) *Editor {
	return &Editor{api: api, state: StateClosed}
}

// State returns the current editor state
func (e *Editor) State() string { return e.state }

// Order returns the loaded order, nil when closed
func (e *Editor) Order() *models.Order { return e.order }

// Items returns the loaded line items with resolved categories
func (e *Editor) Items() []models.OrderItem { return e.items }

// Draft returns the editable header fields; meaningful only while editing
func (e *Editor) Draft() *client.OrderHeaderParams { return &e.draft }

// Notice returns the last transient error message, empty when the last
// operation succeeded
func (e *Editor) Notice() string { return e.notice }

// Open loads the order and its items and moves to the viewing state.
// On failure the editor stays closed and the error becomes the notice.
func (e *Editor) Open(ctx context.Context, orderID uint) error {
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	order, err := e.api.GetOrder(ctx, orderID)
	if err != nil {
		e.notice = err.Error()
		return err
	}
	catalog, err := e.api.ListOfferings(ctx)
	if err != nil {
		e.notice = err.Error()
		return err
	}

	e.order = order
	e.items = order.Items
	e.catalog = catalog
	e.state = StateViewing
	e.notice = ""
	return nil
}

// BeginEdit makes the header fields editable, seeding the draft from the
// loaded order
func (e *Editor) BeginEdit() error {
	if e.state != StateViewing {
		return fmt.Errorf("cannot edit from state %q", e.state)
	}
	e.draft = client.OrderHeaderParams{
		CustomerName:  e.order.CustomerName,
		CustomerEmail: e.order.CustomerEmail,
		CustomerPhone: e.order.CustomerPhone,
		AddressLine:   e.order.AddressLine,
		City:          e.order.City,
		Pincode:       e.order.Pincode,
		PaymentMethod: e.order.PaymentMethod,
		Status:        e.order.Status,
	}
	e.state = StateEditing
	return nil
}

// Cancel closes the editor from either open state, discarding any draft
func (e *Editor) Cancel() {
	e.state = StateClosed
	e.order = nil
	e.items = nil
	e.catalog = nil
	e.draft = client.OrderHeaderParams{}
	e.notice = ""
}

// CanAddItem reports whether an add-item submission is complete: a service
// code is chosen, and a tier too when the service prices by tier
func (e *Editor) CanAddItem(code, tier string) bool {
	if code == "" {
		return false
	}
	for i := range e.catalog {
		if e.catalog[i].Code == code {
			if e.catalog[i].HasPriceTable() && tier == "" {
				return false
			}
			return true
		}
	}
	return false
}

// AddItem submits a new line item and reloads the order so the backend's
// recomputed totals are reflected. The editor stays in its current state
// on failure.
func (e *Editor) AddItem(ctx context.Context, code, tier string, quantity int) error {
	if e.state == StateClosed {
		return fmt.Errorf("no order is open")
	}
	if e.busy {
		return ErrBusy
	}
	if !e.CanAddItem(code, tier) {
		err := fmt.Errorf("select a service%s before adding", tierHint(e.catalog, code))
		e.notice = err.Error()
		return err
	}
	e.busy = true
	defer func() { e.busy = false }()

	_, err := e.api.AddOrderItem(ctx, e.order.ID, client.NewItemParams{
		Code:     code,
		Tier:     tier,
		Quantity: quantity,
	})
	if err != nil {
		e.notice = err.Error()
		return err
	}
	return e.refresh(ctx)
}

// RemoveItem deletes one line item and reloads the order
func (e *Editor) RemoveItem(ctx context.Context, itemID uint) error {
	if e.state == StateClosed {
		return fmt.Errorf("no order is open")
	}
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	if err := e.api.RemoveOrderItem(ctx, e.order.ID, itemID); err != nil {
		e.notice = err.Error()
		return err
	}
	return e.refresh(ctx)
}

// Save submits the draft header fields. On success the returned order is
// merged into local state and the editor returns to viewing; on failure
// it stays in editing with the draft exactly as typed.
func (e *Editor) Save(ctx context.Context) error {
	if e.state != StateEditing {
		return fmt.Errorf("cannot save from state %q", e.state)
	}
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	order, err := e.api.UpdateOrder(ctx, e.order.ID, e.draft)
	if err != nil {
		e.notice = err.Error()
		return err
	}

	// Merge server fields, keeping the already loaded items
	order.Items = e.items
	e.order = order
	e.state = StateViewing
	e.notice = ""
	return nil
}

// DisplaySubtotal is the advisory sum of all line totals
func (e *Editor) DisplaySubtotal() decimal.Decimal {
	return pricing.Subtotal(e.items)
}

// DisplayFee is the advisory convenience fee for the loaded items
func (e *Editor) DisplayFee() decimal.Decimal {
	return pricing.ConvenienceFee(e.items)
}

// DisplayTotal is the advisory total: all line totals plus the fee
func (e *Editor) DisplayTotal() decimal.Decimal {
	return pricing.DisplayTotal(e.items)
}

// refresh reloads the order and items after an item mutation and tells
// the owning screen to reload its order list
func (e *Editor) refresh(ctx context.Context) error {
	order, err := e.api.GetOrder(ctx, e.order.ID)
	if err != nil {
		e.notice = err.Error()
		return err
	}
	e.order = order
	e.items = order.Items
	e.notice = ""

	if e.OnOrdersChanged != nil {
		e.OnOrdersChanged()
	}
	return nil
}

// tierHint names the missing input for an incomplete add-item submission
func tierHint(catalog []models.Offering, code string) string {
	for i := range catalog {
		if catalog[i].Code == code && catalog[i].HasPriceTable() {
			return " and a tier"
		}
	}
	return ""
}
