/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package data_model

import "encoding/json"

// AssetRightsResponse is the response of the get_asset_rights probe.
// Field names are part of the external contract and are marshalled as-is.
// Unknown asset ids yield Exists false with an empty rights list rather than
// an error.
type AssetRightsResponse struct {
	Rights []AssetRight
	Exists bool
}

// Contains returns true if the response includes the given right.
func (r *AssetRightsResponse) Contains(right AssetRight) bool {
	for _, e := range r.Rights {
		if e == right {
			return true
		}
	}
	return false
}

// Encode serializes the response.
func (r *AssetRightsResponse) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode deserializes the response.
func (r *AssetRightsResponse) Decode(responseBytes []byte) error {
	return json.Unmarshal(responseBytes, r)
}

// BuildAssetRightsResponse assembles a rights response.
func BuildAssetRightsResponse(exists bool, rights []AssetRight) AssetRightsResponse {
	if rights == nil {
		rights = []AssetRight{}
	}
	return AssetRightsResponse{Exists: exists, Rights: rights}
}
