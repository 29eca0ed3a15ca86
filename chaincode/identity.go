/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package chaincode

import (
	"github.com/ajmanlove/hyperledger-sandbox/internal/common/global"

	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

// GetCallerId resolves the enrollment id of the transaction submitter.
// The transient map entry "id" wins when present, which is how tests and
// tooling impersonate specific participants; otherwise the id comes from the
// caller's certificate, preferring the enrollmentId attribute over the raw
// identity string.
func GetCallerId(stub shim.ChaincodeStubInterface) (string, error) {
	transient, err := stub.GetTransient()
	if err == nil && transient != nil {
		if id, ok := transient[global.TRANSIENT_ID_KEY]; ok && len(id) > 0 {
			return string(id), nil
		}
	}

	attrValue, found, err := cid.GetAttributeValue(stub, global.ENROLLMENT_ID_ATTRIBUTE)
	if err == nil && found && len(attrValue) > 0 {
		return attrValue, nil
	}

	callerId, err := cid.GetID(stub)
	if err != nil {
		return "", errors.Wrap(err, "Failed to resolve caller identity")
	}
	return callerId, nil
}
