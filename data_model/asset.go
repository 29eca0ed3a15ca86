/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package data_model contains structs used across packages to prevent circular imports.
// For example, the AssetRecord struct is needed by both access_ctrl and asset_mgmt,
// but asset_mgmt depends on functions in access_ctrl.
// They can't import each other, so the shared structs live here.
package data_model

import (
	"encoding/json"
)

// AssetRight is a numeric right code held by a user on an asset.
// The codes are part of the external contract of get_asset_rights and must
// not be renumbered.
type AssetRight int32

const (
	// RIGHT_OWNER is held by the user who created the asset; it carries write access.
	RIGHT_OWNER AssetRight = 0

	// RIGHT_VIEWER carries read access.
	RIGHT_VIEWER AssetRight = 1

	// RIGHT_APPROVAL gates terminal proposal actions (accept/reject).
	RIGHT_APPROVAL AssetRight = 2
)

// AssetKind distinguishes the two asset namespaces.
type AssetKind string

const (
	KIND_REQUEST  AssetKind = "request"
	KIND_PROPOSAL AssetKind = "proposal"
)

// AssetRecord is the rights table of a single asset: a mapping from user id to
// the set of rights that user holds on the asset. One record exists per asset
// id, stored and mutated only by asset_mgmt.
type AssetRecord struct {
	Rights map[string][]AssetRight `json:"assetRights"`
}

// Init initializes an empty rights table.
func (r *AssetRecord) Init() {
	r.Rights = make(map[string][]AssetRight)
}

// UserHasRight returns true if the given user holds the given right.
func (r *AssetRecord) UserHasRight(userId string, right AssetRight) bool {
	for _, e := range r.Rights[userId] {
		if e == right {
			return true
		}
	}
	return false
}

// UserRights returns the rights held by the given user.
// Users with no rights get an empty list, never nil.
func (r *AssetRecord) UserRights(userId string) []AssetRight {
	rights := r.Rights[userId]
	if rights == nil {
		return []AssetRight{}
	}
	return rights
}

// GiveRight grants a single right to a user if not already held.
func (r *AssetRecord) GiveRight(userId string, right AssetRight) {
	if !r.UserHasRight(userId, right) {
		r.Rights[userId] = append(r.Rights[userId], right)
	}
}

// AssignUserRights grants each of the given rights to a user.
func (r *AssetRecord) AssignUserRights(userId string, rights []AssetRight) {
	for _, e := range rights {
		r.GiveRight(userId, e)
	}
}

// Encode serializes the record for the ledger.
func (r *AssetRecord) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode deserializes the record from the ledger.
func (r *AssetRecord) Decode(recordBytes []byte) error {
	return json.Unmarshal(recordBytes, r)
}
