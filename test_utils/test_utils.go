/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package test_utils contains utility functions for testing, such as creating
// a mock stub and invoking it as a named participant.
package test_utils

import (
	"github.com/ajmanlove/hyperledger-sandbox/internal/common/global"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/golang/protobuf/ptypes"
	"github.com/google/uuid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// CreateMockStub returns a mock stub for the given chaincode with Init already run.
func CreateMockStub(name string, cc shim.Chaincode) *MockStub {
	stub := NewMockStub(name, cc)
	stub.MockInit(uuid.New().String(), utils.ToChaincodeArgs("init"))
	return stub
}

// TransientId builds the transient map that impersonates the given caller.
func TransientId(userId string) map[string][]byte {
	return map[string][]byte{global.TRANSIENT_ID_KEY: []byte(userId)}
}

// InvokeAs invokes the chaincode as the given caller.
func InvokeAs(stub *MockStub, userId string, args ...string) peer.Response {
	return stub.MockInvoke(uuid.New().String(), utils.ToChaincodeArgs(args...), TransientId(userId))
}

// SetCaller begins a mock transaction as the given caller without dispatching
// through Invoke, for tests that exercise services directly against the stub.
// The returned function ends the transaction.
func SetCaller(stub *MockStub, userId string) func() {
	txId := uuid.New().String()
	stub.transient = TransientId(userId)
	stub.MockTransactionStart(txId)
	stub.TxTimestamp = ptypes.TimestampNow()
	return func() { stub.MockTransactionEnd(txId) }
}
