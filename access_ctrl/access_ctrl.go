/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package access_ctrl evaluates whether a user holds a required right on an
// asset. Evaluation is a pure function over the asset's rights record; all
// storage of rights records is owned by asset_mgmt. Rights are never inherited
// across asset kinds: holding read on a request confers nothing on its child
// proposals.
package access_ctrl

import (
	"github.com/ajmanlove/hyperledger-sandbox/custom_errors"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"

	"github.com/pkg/errors"
)

// HasRight returns true if the given user holds the given right on the asset
// described by the rights record.
func HasRight(record data_model.AssetRecord, userId string, right data_model.AssetRight) bool {
	return record.UserHasRight(userId, right)
}

// AssertRight signals an authorization failure unless the given user holds the
// given right. Intended for use at the top of every service entry point.
// The returned error carries the stable insufficient-rights wording that
// callers match on.
func AssertRight(assetId string, record data_model.AssetRecord, userId string, right data_model.AssetRight) error {
	if HasRight(record, userId, right) {
		return nil
	}
	return errors.WithStack(&custom_errors.InsufficientRightsError{AssetId: assetId, Missing: int32(right)})
}

// DenyRead returns the authorization failure produced when a read is refused.
// Reads of unknown assets return this same error so unauthorized callers
// cannot distinguish "doesn't exist" from "exists, not yours".
func DenyRead(assetId string) error {
	return errors.WithStack(&custom_errors.InsufficientRightsError{AssetId: assetId, Missing: int32(data_model.RIGHT_VIEWER)})
}
