// Package types defines the RecordStore interface, the Record entity,
// configuration, and the standard errors for the userbook storage layer.
//
// Callers attach a RecordStore to a backend, ensure the schema, and then
// list, insert, and delete records. Every storage failure is returned as a
// *StoreError whose kind is one of ErrSchema, ErrQuery, or ErrWrite.
package types
