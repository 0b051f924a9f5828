package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel is the aggregate root of the shipment lifecycle. It owns the status
// state machine, the derived collection/delivery timestamps, and the
// references that tie a shipment to its sender, recipient, courier and zone.
//
// Invariants:
//   - Client and recipient references are mandatory and immutable after
//     creation.
//   - Weight is strictly positive, description and destination city are
//     non-empty.
//   - Collection and delivery timestamps are write-once: the first transition
//     into Collected/Delivered sets them, later re-entries never overwrite.
//   - Status transitions are permissive: any valid target status is accepted;
//     a transition to the current status is a no-op.
//
// History entries and product attachments are related by parcel id through
// their own repositories, never held as embedded object references.
type Parcel struct {
	id              kernel.UUID
	description     string
	weight          float64
	priority        Priority
	status          Status
	destinationCity string

	// deliveryDeadline is optional; a parcel without one is never overdue.
	deliveryDeadline *time.Time

	createdAt time.Time
	updatedAt time.Time

	// collectedAt and deliveredAt are write-once, stamped on the first
	// transition into Collected and Delivered respectively.
	collectedAt *time.Time
	deliveredAt *time.Time

	clientID    kernel.UUID
	recipientID kernel.UUID
	courierID   *kernel.UUID
	zoneID      *kernel.UUID

	isConstructed bool
}

// NewParcel creates a parcel in Created status with creation and modification
// times stamped at now. Courier and zone start unassigned; the zone may be
// attached right after construction via AssignZone.
func NewParcel(
	id kernel.UUID,
	clientID kernel.UUID,
	recipientID kernel.UUID,
	description string,
	weight float64,
	priority Priority,
	destinationCity string,
	deliveryDeadline *time.Time,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusCreated,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setClientID(clientID),
		p.setRecipientID(recipientID),
		p.setDescription(description),
		p.setWeight(weight),
		p.setPriority(priority),
		p.setDestinationCity(destinationCity),
	); err != nil {
		return nil, err
	}

	p.deliveryDeadline = deliveryDeadline
	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without replaying its
// history. The stored state is trusted except for field-level validation.
func RestoreParcel(
	id kernel.UUID,
	clientID kernel.UUID,
	recipientID kernel.UUID,
	description string,
	weight float64,
	priority Priority,
	status Status,
	destinationCity string,
	deliveryDeadline *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	collectedAt *time.Time,
	deliveredAt *time.Time,
	courierID *kernel.UUID,
	zoneID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		collectedAt:      collectedAt,
		deliveredAt:      deliveredAt,
		deliveryDeadline: deliveryDeadline,
		isConstructed:    true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setClientID(clientID),
		p.setRecipientID(recipientID),
		p.setDescription(description),
		p.setWeight(weight),
		p.setPriority(priority),
		p.setStatus(status),
		p.setDestinationCity(destinationCity),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := p.AssignCourier(*courierID); err != nil {
			return nil, err
		}
	}
	if zoneID != nil {
		if err := p.AssignZone(*zoneID); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Description returns the free-text description of the parcel contents.
func (p *Parcel) Description() string {
	return p.description
}

// Weight returns the declared weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Priority returns the declared priority.
func (p *Parcel) Priority() Priority {
	return p.priority
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// DestinationCity returns the destination city.
func (p *Parcel) DestinationCity() string {
	return p.destinationCity
}

// DeliveryDeadline returns the delivery deadline, or nil if none was set.
func (p *Parcel) DeliveryDeadline() *time.Time {
	return p.deliveryDeadline
}

// CreatedAt returns the creation time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last modification.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// CollectedAt returns the collection time, or nil if the parcel was never
// collected.
func (p *Parcel) CollectedAt() *time.Time {
	return p.collectedAt
}

// DeliveredAt returns the delivery time, or nil if the parcel was never
// delivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Client returns the owning client's identifier.
func (p *Parcel) Client() kernel.UUID {
	return p.clientID
}

// Recipient returns the recipient's identifier.
func (p *Parcel) Recipient() kernel.UUID {
	return p.recipientID
}

// Courier returns the assigned courier's identifier, or nil if unassigned.
func (p *Parcel) Courier() *kernel.UUID {
	return p.courierID
}

// Zone returns the assigned zone's identifier, or nil if unassigned.
func (p *Parcel) Zone() *kernel.UUID {
	return p.zoneID
}

// ChangeStatus moves the parcel to newStatus at the given time.
//
// A request targeting the current status is accepted and reported as
// unchanged: no timestamps move and the caller must not append history.
// Any other valid status is accepted unconditionally. The first transition
// into Collected stamps the collection time, the first into Delivered stamps
// the delivery time; re-entering either status later never overwrites an
// existing stamp.
//
// Returns true when the status actually changed.
func (p *Parcel) ChangeStatus(newStatus Status, at time.Time) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}

	if p.status == newStatus {
		return false, nil
	}

	p.status = newStatus
	p.updatedAt = at

	switch newStatus {
	case StatusCollected:
		if p.collectedAt == nil {
			stamp := at
			p.collectedAt = &stamp
		}
	case StatusDelivered:
		if p.deliveredAt == nil {
			stamp := at
			p.deliveredAt = &stamp
		}
	default:
	}

	return true, nil
}

// CanMutateProducts reports whether the product list may currently be
// changed. Mutation is only allowed in Created or InStock.
func (p *Parcel) CanMutateProducts() bool {
	return p.status.AllowsProductMutation()
}

// IsOverdue reports whether the delivery deadline has strictly passed while
// the parcel is still unfinished. A parcel without a deadline is never
// overdue.
func (p *Parcel) IsOverdue(now time.Time) bool {
	if p.deliveryDeadline == nil || p.status.IsFinished() {
		return false
	}
	return p.deliveryDeadline.Before(now)
}

// AssignCourier attaches a courier reference to the parcel.
func (p *Parcel) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.courierID = &courierID
	return nil
}

// AssignZone attaches a zone reference to the parcel.
func (p *Parcel) AssignZone(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	p.zoneID = &zoneID
	return nil
}

// ChangeDescription replaces the description.
func (p *Parcel) ChangeDescription(description string) error {
	return p.setDescription(description)
}

// ChangeWeight replaces the declared weight.
func (p *Parcel) ChangeWeight(weight float64) error {
	return p.setWeight(weight)
}

// ChangePriority replaces the declared priority.
func (p *Parcel) ChangePriority(priority Priority) error {
	return p.setPriority(priority)
}

// ChangeDestinationCity replaces the destination city.
func (p *Parcel) ChangeDestinationCity(city string) error {
	return p.setDestinationCity(city)
}

// ChangeDeliveryDeadline replaces the delivery deadline. Passing nil clears it.
func (p *Parcel) ChangeDeliveryDeadline(deadline *time.Time) {
	p.deliveryDeadline = deadline
}

// Touch moves the modification time forward. Called by update handlers after
// applying field changes that do not go through ChangeStatus.
func (p *Parcel) Touch(at time.Time) {
	p.updatedAt = at
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	p.clientID = clientID
	return nil
}

func (p *Parcel) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	p.recipientID = recipientID
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setDestinationCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("destinationCity")
	}
	p.destinationCity = city
	return nil
}
