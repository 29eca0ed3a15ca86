/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package asset_registry is an interface for high-level asset registry functions.
package asset_registry

import (
	"github.com/ajmanlove/hyperledger-sandbox/data_model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// AssetRegistry is the sole writer of assets, rights records, and per-user
// indices. Every mutating operation updates the asset, its rights record, and
// all affected users' indices within the caller's transaction, so the three
// views never diverge: a failed call leaves all of them untouched. Cross
// transaction races on the same asset id are resolved by the peer's
// read/write-set validation; the losing transaction is invalidated rather
// than silently overwritten.
type AssetRegistry interface {

	// GetStub returns the stub, which provides functions for accessing and modifying the ledger.
	GetStub() shim.ChaincodeStubInterface

	// GetCallerId returns the enrollment id of the caller this registry acts for.
	GetCallerId() string

	// CreateRequest stores a new reinsurance request owned by the caller.
	// The registry allocates the id, stamps status/timestamps, builds the
	// rights record (owner: owner+viewer; each requestee: viewer), appends a
	// submission entry to the owner's index and a request entry to each
	// requestee's index. Returns the stored request.
	CreateRequest(requestees []string, request data_model.ReinsuranceRequest) (data_model.ReinsuranceRequest, error)

	// GetRequest returns the request with the given id if the caller holds
	// read on it. Unknown ids and missing rights produce the same
	// insufficient-rights error.
	GetRequest(requestId string) (data_model.ReinsuranceRequest, error)

	// CreateProposal stores a new proposal by the caller against the given
	// request. The caller must hold read on the request and must not be its
	// owner. The proposal starts in status bid; its rights record grants read
	// to the bidder and read+approval to the request owner; both parties'
	// indices gain an active proposal entry.
	CreateProposal(requestId string, contractText string) (data_model.ReinsuranceBid, error)

	// GetProposal returns the proposal with the given id if the caller holds
	// read on it. Unknown ids and missing rights produce the same
	// insufficient-rights error.
	GetProposal(proposalId string) (data_model.ReinsuranceBid, error)

	// TransitionProposal moves the proposal to newStatus, replacing its
	// contract text when newText is non-empty. The caller must hold the
	// required right on the proposal; a caller holding read but not the
	// required right is an invalid actor. The transition must be legal from
	// the proposal's current status. Terminal transitions move the proposal
	// out of both parties' active index into their accepted/rejected set.
	TransitionProposal(proposalId string, newStatus string, newText string, required data_model.AssetRight) (data_model.ReinsuranceBid, error)

	// GetUserAssets returns the caller's own index. There is no cross-user
	// index query.
	GetUserAssets() (data_model.UserAssetsRecord, error)

	// GetAssetRights reports which rights the given user holds on the given
	// asset. This is the deliberate rights probe: unknown ids report
	// Exists=false with empty rights rather than failing.
	GetAssetRights(userId string, assetId string) (data_model.AssetRightsResponse, error)
}
