// Package parcel provides the domain model for shipment lifecycle tracking.
//
// The package includes:
//   - Parcel: the aggregate root owning the status state machine and the
//     derived collection/delivery timestamps
//   - Status: the lifecycle enum with the product-mutation and finished sets
//   - Priority: the declared urgency enum
//   - HistoryEntry: the append-only audit record of one status change
//   - ProductAttachment: a product line with quantity and price snapshot
//
// Key business rules:
//   - Client and recipient references are mandatory and immutable
//   - Status transitions are permissive; only a same-status request is a no-op
//   - The first transition into Collected/Delivered stamps a write-once time
//   - The product list is only mutable in Created or InStock
//   - History entries and attachments relate to the parcel by id only and are
//     cascade-deleted with it
package parcel
