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

// RequestEvent is the payload of the chaincode event emitted when a request is
// submitted, so off-chain listeners can notify the invited reinsurers.
type RequestEvent struct {
	RequestId   string      `json:"requestId"`
	RequestorId string      `json:"requestorId"`
	Recipients  []Recipient `json:"recipients"`
}

// Encode serializes the event payload.
func (e *RequestEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode deserializes the event payload.
func (e *RequestEvent) Decode(eventBytes []byte) error {
	return json.Unmarshal(eventBytes, e)
}

// Recipient is an invited reinsurer on a RequestEvent. RecipientContact is
// empty when the recipient has not enrolled a contact address.
type Recipient struct {
	RecipientId      string `json:"recipientId"`
	RecipientContact string `json:"recipientContact"`
}

// Enrollee is a participant's contact registration.
type Enrollee struct {
	Id      string `json:"id"`
	Contact string `json:"contact"`
}
