package order

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDelivererAlreadyAssigned is returned when a second deliverer tries to take an order.
	ErrDelivererAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause(
		"deliverer", errors.New("order already has a deliverer"))
)

// RestaurantRef is the part of a restaurant an order keeps: enough to know who owns it.
type RestaurantRef struct {
	id      kernel.ID
	ownerID kernel.ID
}

func NewRestaurantRef(id, ownerID kernel.ID) (RestaurantRef, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return RestaurantRef{}, err
	}
	return RestaurantRef{id: id, ownerID: ownerID}, nil
}

func (r RestaurantRef) ID() kernel.ID {
	return r.id
}

func (r RestaurantRef) OwnerID() kernel.ID {
	return r.ownerID
}

// Order is a customer's purchase from one restaurant, tracked through its
// delivery lifecycle.
//
// Order follows these invariants:
//   - Items and total never change after construction
//   - Status is always valid; a new order starts Pending
//   - The deliverer is absent until a delivery user takes the order, then fixed
type Order struct {
	id         kernel.ID
	customerID kernel.ID
	restaurant RestaurantRef
	deliverer  kernel.Optional[kernel.ID]
	items      []Item
	total      kernel.Price
	status     Status

	events        []Event
	isConstructed bool
}

// NewOrder creates a Pending order for customerID at restaurant. The total is
// computed by the caller (the pricing engine) and only validated here.
//
// The returned order has no ID yet; the store assigns one on insert.
func NewOrder(customerID kernel.ID, restaurant *catalog.Restaurant, items []Item, total kernel.Price) (*Order, error) {
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}

	ref, err := NewRestaurantRef(restaurant.ID(), restaurant.OwnerID())
	if err != nil {
		return nil, err
	}

	o := &Order{
		restaurant:    ref,
		deliverer:     kernel.None[kernel.ID](),
		items:         append([]Item(nil), items...),
		status:        Pending,
		isConstructed: true,
	}

	if err = errors.Join(
		o.setCustomer(customerID),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	o.record(EventCreated)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. It records no events.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	restaurant RestaurantRef,
	deliverer kernel.Optional[kernel.ID],
	items []Item,
	total kernel.Price,
	status Status,
) (*Order, error) {
	o := &Order{
		restaurant:    restaurant,
		deliverer:     deliverer,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setTotal(total),
		o.setStatus(status),
		o.setDeliverer(deliverer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order went through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID is zero until the store inserts the order.
func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) Restaurant() RestaurantRef {
	return o.restaurant
}

// Deliverer returns the delivery user who took the order, if any.
func (o *Order) Deliverer() (kernel.ID, bool) {
	return o.deliverer.Get()
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Total() kernel.Price {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

// AssignID gives a freshly inserted order its identity, together with the IDs the
// store gave its items (in item order). It fails if the order already has one.
func (o *Order) AssignID(id kernel.ID, itemIDs []kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %s", o.id))
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"item ids", fmt.Errorf("got %d ids for %d items", len(itemIDs), len(o.items)))
	}

	if err := o.setID(id); err != nil {
		return err
	}
	for i := range o.items {
		if err := itemIDs[i].Validate(); err != nil {
			return err
		}
		o.items[i].id = itemIDs[i]
	}
	return nil
}

// ChangeStatus moves the order to target. Authorization of the change is the
// caller's responsibility; restating the current status is allowed.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	o.status = target
	o.record(EventStatusChanged)
	return nil
}

// AssignDeliverer records the delivery user taking the order.
func (o *Order) AssignDeliverer(delivererID kernel.ID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	if o.deliverer.IsPresent() {
		return ErrDelivererAlreadyAssigned
	}

	o.deliverer = kernel.Some(delivererID)
	o.record(EventTaken)
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setTotal(total kernel.Price) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliverer(deliverer kernel.Optional[kernel.ID]) error {
	if id, ok := deliverer.Get(); ok {
		return id.Validate()
	}
	return nil
}
