/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package enrollment_mgmt stores participant contact registrations. Contacts
// are advisory data carried on request events so off-chain listeners can reach
// the invited reinsurers; they gate nothing.
package enrollment_mgmt

import (
	"encoding/json"
	"log/slog"

	"github.com/ajmanlove/hyperledger-sandbox/custom_errors"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"
	"github.com/ajmanlove/hyperledger-sandbox/internal/common/global"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

var logger = slog.Default().With("component", "enrollment_mgmt")

// Enroll records or replaces the caller's contact address.
func Enroll(stub shim.ChaincodeStubInterface, callerId string, contact string) (data_model.Enrollee, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if utils.IsStringEmpty(contact) {
		return data_model.Enrollee{}, errors.New("Contact must be non-empty")
	}

	enrollee := data_model.Enrollee{Id: callerId, Contact: contact}
	enrolleeBytes, err := json.Marshal(&enrollee)
	if err != nil {
		return data_model.Enrollee{}, errors.Wrap(err, (&custom_errors.MarshalError{Type: "Enrollee"}).Error())
	}
	ledgerKey := global.ENROLLEE_PREFIX + callerId
	if err := stub.PutState(ledgerKey, enrolleeBytes); err != nil {
		return data_model.Enrollee{}, errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: ledgerKey}).Error())
	}
	logger.Info("enrolled contact", "userId", callerId)
	return enrollee, nil
}

// GetContact returns the registered contact of the given user, or the empty
// string if the user never enrolled one.
func GetContact(stub shim.ChaincodeStubInterface, userId string) (string, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	ledgerKey := global.ENROLLEE_PREFIX + userId
	enrolleeBytes, err := stub.GetState(ledgerKey)
	if err != nil {
		return "", errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: ledgerKey, LedgerItem: "enrollee"}).Error())
	}
	if len(enrolleeBytes) == 0 {
		return "", nil
	}
	enrollee := data_model.Enrollee{}
	if err := json.Unmarshal(enrolleeBytes, &enrollee); err != nil {
		return "", errors.Wrap(err, (&custom_errors.UnmarshalError{Type: "Enrollee"}).Error())
	}
	return enrollee.Contact, nil
}
