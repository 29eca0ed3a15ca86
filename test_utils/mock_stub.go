/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package test_utils

import (
	"github.com/golang/protobuf/ptypes"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// MockStub wraps shimtest.MockStub so invocations can carry a transient map
// (used for caller impersonation) and so emitted chaincode events can be
// inspected after the call.
type MockStub struct {
	*shimtest.MockStub

	cc        shim.Chaincode
	args      [][]byte
	transient map[string][]byte

	// Events collects the payload of every event set during invocations,
	// keyed by event name. Later events overwrite earlier ones of the same name.
	Events map[string][]byte
}

// NewMockStub constructs a MockStub for the given chaincode.
func NewMockStub(name string, cc shim.Chaincode) *MockStub {
	return &MockStub{
		MockStub: shimtest.NewMockStub(name, cc),
		cc:       cc,
		Events:   make(map[string][]byte),
	}
}

// MockInit calls the chaincode's Init within a mock transaction.
func (stub *MockStub) MockInit(uuid string, args [][]byte) peer.Response {
	stub.args = args
	stub.transient = nil
	stub.MockTransactionStart(uuid)
	stub.TxTimestamp = ptypes.TimestampNow()
	res := stub.cc.Init(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

// MockInvoke calls the chaincode's Invoke within a mock transaction, passing
// the given transient map through to GetTransient.
func (stub *MockStub) MockInvoke(uuid string, args [][]byte, transient map[string][]byte) peer.Response {
	stub.args = args
	stub.transient = transient
	stub.MockTransactionStart(uuid)
	stub.TxTimestamp = ptypes.TimestampNow()
	res := stub.cc.Invoke(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

// GetArgs overrides the embedded stub so invocations made through this
// wrapper see the wrapper's args.
func (stub *MockStub) GetArgs() [][]byte {
	return stub.args
}

// GetStringArgs returns the invocation args as strings.
func (stub *MockStub) GetStringArgs() []string {
	args := make([]string, len(stub.args))
	for i, arg := range stub.args {
		args[i] = string(arg)
	}
	return args
}

// GetFunctionAndParameters splits args into the function name and its parameters.
func (stub *MockStub) GetFunctionAndParameters() (string, []string) {
	allArgs := stub.GetStringArgs()
	if len(allArgs) == 0 {
		return "", nil
	}
	return allArgs[0], allArgs[1:]
}

// GetTransient returns the transient map of the current invocation.
func (stub *MockStub) GetTransient() (map[string][]byte, error) {
	return stub.transient, nil
}

// SetEvent records the event instead of delivering it to a channel.
func (stub *MockStub) SetEvent(name string, payload []byte) error {
	stub.Events[name] = payload
	return nil
}
