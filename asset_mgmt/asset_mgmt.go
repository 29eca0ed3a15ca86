/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package asset_mgmt is the entry point to the registry of reinsurance assets.
// It keeps every asset, its rights record, and all per-user indices consistent
// within a single transaction.
package asset_mgmt

import (
	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt/asset_registry"
	"github.com/ajmanlove/hyperledger-sandbox/internal/asset_mgmt_i"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// GetAssetRegistry returns the registry acting on behalf of the given caller.
func GetAssetRegistry(stub shim.ChaincodeStubInterface, callerId string) asset_registry.AssetRegistry {
	return asset_mgmt_i.GetAssetRegistry(stub, callerId)
}
