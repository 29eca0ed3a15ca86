/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package chaincode wires the reinsurance workflow services into a Fabric
// chaincode. Invoke resolves the caller's identity, dispatches to the named
// operation, and marshals the result; all domain behavior lives in the
// service packages.
package chaincode

import (
	"encoding/json"
	"log/slog"

	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/custom_errors"
	"github.com/ajmanlove/hyperledger-sandbox/enrollment_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/proposal_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/request_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

var logger = slog.Default().With("component", "chaincode")

// ReinsuranceChaincode implements the placement negotiation workflow.
type ReinsuranceChaincode struct{}

// New constructs and returns a ReinsuranceChaincode instance.
func New() *ReinsuranceChaincode {
	return &ReinsuranceChaincode{}
}

// Init is called during chaincode instantiation. No setup is required.
func (t *ReinsuranceChaincode) Init(stub shim.ChaincodeStubInterface) peer.Response {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return shim.Success(nil)
}

// Invoke dispatches to the operation named by the first invocation argument.
func (t *ReinsuranceChaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	function, args := stub.GetFunctionAndParameters()

	callerId, err := GetCallerId(stub)
	if err != nil {
		return errorResponse(function, err)
	}
	logger.Debug("invoke", "function", function, "caller", callerId)

	registry := asset_mgmt.GetAssetRegistry(stub, callerId)
	requests := request_mgmt.GetRequestService(registry)
	proposals := proposal_mgmt.GetProposalService(registry)

	switch function {
	case "submit":
		request, err := requests.Submit(args)
		return marshalResponse(function, request, err)

	case "get_request":
		if err := expectArgs(args, 1, "requestId"); err != nil {
			return errorResponse(function, err)
		}
		request, err := requests.GetRequest(args[0])
		return marshalResponse(function, request, err)

	case "propose":
		if err := expectArgs(args, 2, "requestId, contractText"); err != nil {
			return errorResponse(function, err)
		}
		bid, err := proposals.Propose(args[0], args[1])
		return marshalResponse(function, bid, err)

	case "counter":
		if err := expectArgs(args, 2, "proposalId, contractText"); err != nil {
			return errorResponse(function, err)
		}
		bid, err := proposals.Counter(args[0], args[1])
		return marshalResponse(function, bid, err)

	case "accept":
		if err := expectArgs(args, 1, "proposalId"); err != nil {
			return errorResponse(function, err)
		}
		bid, err := proposals.Accept(args[0])
		return marshalResponse(function, bid, err)

	case "reject":
		if err := expectArgs(args, 1, "proposalId"); err != nil {
			return errorResponse(function, err)
		}
		bid, err := proposals.Reject(args[0])
		return marshalResponse(function, bid, err)

	case "get_proposal":
		if err := expectArgs(args, 1, "proposalId"); err != nil {
			return errorResponse(function, err)
		}
		bid, err := proposals.GetProposal(args[0])
		return marshalResponse(function, bid, err)

	case "get_user_assets":
		assets, err := registry.GetUserAssets()
		return marshalResponse(function, assets, err)

	case "get_asset_rights":
		if err := expectArgs(args, 2, "userId, assetId"); err != nil {
			return errorResponse(function, err)
		}
		rights, err := registry.GetAssetRights(args[0], args[1])
		return marshalResponse(function, rights, err)

	case "enroll":
		if err := expectArgs(args, 1, "contact"); err != nil {
			return errorResponse(function, err)
		}
		enrollee, err := enrollment_mgmt.Enroll(stub, callerId, args[0])
		return marshalResponse(function, enrollee, err)

	case "get_contact":
		if err := expectArgs(args, 1, "userId"); err != nil {
			return errorResponse(function, err)
		}
		contact, err := enrollment_mgmt.GetContact(stub, args[0])
		if err != nil {
			return errorResponse(function, err)
		}
		return shim.Success([]byte(contact))

	default:
		return shim.Error("Unknown function " + function)
	}
}

// ------------------------------------------------------
// ----------------- HELPER FUNCTIONS -------------------
// ------------------------------------------------------

func expectArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.Errorf("Expected %d args: %s", n, usage)
	}
	return nil
}

// marshalResponse converts a service result into a peer response. The error
// message is passed through untouched so callers can match on stable wording.
func marshalResponse(function string, result interface{}, err error) peer.Response {
	if err != nil {
		return errorResponse(function, err)
	}
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return errorResponse(function, errors.Wrap(err, (&custom_errors.MarshalError{Type: "response"}).Error()))
	}
	return shim.Success(resultBytes)
}

func errorResponse(function string, err error) peer.Response {
	logger.Error("invoke failed", "function", function, "error", err)
	return shim.Error(err.Error())
}
