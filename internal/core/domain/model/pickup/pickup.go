package pickup

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrPickupIsNotConstructed is returned when a Pickup instance was not
	// created through NewPickup or RestorePickup.
	ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup constructor")

	// ErrLocationIsRequired is returned when creating a pickup without a location.
	ErrLocationIsRequired = errs.NewValidationError("pickup location")
)

// Pickup represents the physical handoff record for an order. It is the
// aggregate root owning the pickup lifecycle and the optional driver link.
//
// Pickup follows these invariants:
//   - Must have a valid unique identifier and a non-empty location
//   - References at most one order; uniqueness per order is enforced by the
//     creating command against the store
//   - The assigned driver must be available at assignment time; that check is
//     transactional and belongs to the assigning command
//   - Status changes go through the permissive allow-list in Status
type Pickup struct {
	id         kernel.UUID
	orderID    *kernel.UUID
	status     Status
	pickupDate time.Time
	location   string
	assignedTo *kernel.UserID
	notes      string

	isConstructed bool
}

// NewPickup creates a pending pickup record.
//
// Parameters:
//   - id: client-generated identifier for the pickup
//   - orderID: the order being handed off, nil for a standalone pickup
//   - location: where the handoff takes place, required
//   - notes: free-text staff notes, may be empty
//   - pickupDate: agreed handoff time; the zero value means not yet scheduled
func NewPickup(id kernel.UUID, orderID *kernel.UUID, location, notes string, pickupDate time.Time) (*Pickup, error) {
	p := &Pickup{
		status:        Pending,
		notes:         notes,
		pickupDate:    pickupDate,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePickup reconstructs a pickup from persistence. Used by repositories only.
func RestorePickup(
	id kernel.UUID,
	orderID *kernel.UUID,
	status Status,
	pickupDate time.Time,
	location string,
	assignedTo *kernel.UserID,
	notes string,
) (*Pickup, error) {
	p := &Pickup{
		pickupDate:    pickupDate,
		notes:         notes,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	p.status = status

	if assignedTo != nil {
		if err := assignedTo.Validate(); err != nil {
			return nil, err
		}
		p.assignedTo = assignedTo
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Pickup instance was properly constructed.
func (p *Pickup) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickupIsNotConstructed
	}
	return nil
}

// IsEqual compares two pickups by their unique identifiers.
func (p *Pickup) IsEqual(other *Pickup) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pickup's unique identifier.
func (p *Pickup) ID() kernel.UUID {
	return p.id
}

// OrderID returns the associated order, or nil for standalone pickups.
func (p *Pickup) OrderID() *kernel.UUID {
	return p.orderID
}

// Status returns the current operational status.
func (p *Pickup) Status() Status {
	return p.status
}

// PickupDate returns the agreed handoff time; zero when unscheduled.
func (p *Pickup) PickupDate() time.Time {
	return p.pickupDate
}

// Location returns the handoff location.
func (p *Pickup) Location() string {
	return p.location
}

// AssignedTo returns the assigned driver's identity, or nil when unassigned.
func (p *Pickup) AssignedTo() *kernel.UserID {
	return p.assignedTo
}

// Notes returns the free-text staff notes.
func (p *Pickup) Notes() string {
	return p.notes
}

// AssignDriver attaches a driver and moves the pickup to Assigned.
// The availability check against the driver registry is the assigning
// command's responsibility; this method only records the link. Driver
// availability itself is not changed here, that is external dispatch policy.
func (p *Pickup) AssignDriver(driverID kernel.UserID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	p.assignedTo = &driverID
	p.status = Assigned
	return nil
}

// TransitionTo moves the pickup to newStatus through the allow-list policy.
// Returns true when the move newly lands on Completed, signalling the caller
// to record the driver's completion within the same transaction. Re-applying
// the current status passes the permissive policy but signals nothing, so a
// repeated completion request cannot credit the driver twice.
func (p *Pickup) TransitionTo(newStatus Status) (completed bool, err error) {
	next, err := p.status.TransitionTo(newStatus)
	if err != nil {
		return false, err
	}

	changed := next != p.status
	p.status = next
	return changed && next == Completed, nil
}

// CanBeDeleted reports whether deletion is allowed without a staff override.
// Only pickups still in the initial pending state qualify.
func (p *Pickup) CanBeDeleted() bool {
	return p.status == Pending
}

// Schedule records the agreed handoff time.
func (p *Pickup) Schedule(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValidationError("pickup date")
	}
	p.pickupDate = pickupDate
	return nil
}

func (p *Pickup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pickup) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Pickup) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}
	p.location = location
	return nil
}
