/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package custom_errors defines our custom error types.
//
// Custom types are useful for:
// 1) allowing callers to do type-checking to see the cause of the error.
// 2) re-using messages for common errors.
// If neither scenario applies, it's perfectly fine to instead use errors.New("some message").
//
// A custom error can be wrapped by another error when returned using errors.Wrap(err, custom_err.Error()).
// To return a custom error with stack trace, use errors.WithStack(custom_err).
// If returning a custom error for type checking, it must be returned without a wrapper.
package custom_errors

import (
	"fmt"
)

// MarshalError provides an error message for json.Marshal failure.
type MarshalError struct {
	Type string
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("Failed to marshal %v", e.Type)
}

// UnmarshalError provides an error message for json.Unmarshal failure.
type UnmarshalError struct {
	Type string
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("Failed to unmarshal %v", e.Type)
}

// Ledger

// GetLedgerError provides an error message for failure to retrieve an item from the ledger.
type GetLedgerError struct {
	LedgerKey  string
	LedgerItem string
}

func (e *GetLedgerError) Error() string {
	return fmt.Sprintf("Failed to get ledger item \"%v\" from ledger with ledger key \"%v\"", e.LedgerItem, e.LedgerKey)
}

// PutLedgerError provides an error message for failure to save an item to the ledger.
type PutLedgerError struct {
	LedgerKey string
}

func (e *PutLedgerError) Error() string {
	return fmt.Sprintf("Failed to put %v in ledger", e.LedgerKey)
}

// Access control

// InsufficientRightsError provides an error message for a caller lacking a
// required right on an asset. Callers detect this failure by matching on the
// "Insuffienct rights on asset" phrase (misspelling included); the wording
// must not change. The same error is returned whether the asset is unknown or
// exists without rights, so callers cannot probe for existence.
type InsufficientRightsError struct {
	AssetId string
	Missing int32
}

func (e *InsufficientRightsError) Error() string {
	return fmt.Sprintf("Insuffienct rights on asset %v. Missing %d", e.AssetId, e.Missing)
}

// AssetNotFoundError provides an error message for an asset id unknown to the system.
type AssetNotFoundError struct {
	AssetId string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("No such asset id %v", e.AssetId)
}

// Proposal state machine

// InvalidTransitionError provides an error message for an illegal proposal
// status transition, including any attempt to mutate a terminal proposal.
type InvalidTransitionError struct {
	ProposalId string
	From       string
	To         string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Illegal transition from %v to %v on proposal %v", e.From, e.To, e.ProposalId)
}

// InvalidActorError provides an error message for a right-holder attempting an
// action reserved for the other negotiating party.
type InvalidActorError struct {
	UserId  string
	Action  string
	AssetId string
}

func (e *InvalidActorError) Error() string {
	return fmt.Sprintf("%v is not permitted to %v asset %v", e.UserId, e.Action, e.AssetId)
}

// ConflictError provides an error message for a write that lost a race on an
// asset id, including an id allocation collision.
type ConflictError struct {
	AssetId string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Write conflict on asset %v", e.AssetId)
}
