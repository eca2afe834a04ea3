// Package repository handles all interactions with the person store.
//
// It exposes data access as an explicit contract with defined failure
// conditions (conflict on duplicate id, not-found on unknown id) so the
// service layer stays decoupled from the storage representation. If a
// real persistence backend ever replaces the in-memory store, this is
// the only layer that changes.
package repository
