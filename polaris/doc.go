// Package polaris provides the domain model for Polaris ILS sample data:
// the base circulation entities (patrons, items, holds, overdues,
// almost-overdues), the enumerations and organization constants the
// exported tables reference, and the circulation calendar rules that keep
// generated dates consistent with Polaris business behavior.
//
// Key types:
//   - Patron, Item, Hold, Overdue, AlmostOverdue: the base entities
//   - Dataset: the canonical in-memory store with id-keyed lookup indexes
//   - DeliveryOption, NotificationStatus, NotificationType: wire-level enums
//
// Calendar rules:
//   - ApplySundayRule shifts any date landing on Sunday forward one day
//   - CheckoutDate derives the checkout date from due date and renewals
//   - OverdueNoticeCount maps days-overdue to the escalation tier
//
// All entities are immutable after creation except for the list-append
// performed while a Dataset is being assembled.
package polaris
