/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package asset_mgmt_i is the default implementation of the AssetRegistry
// interface. Every mutating method performs all reads and validation first and
// writes last, so a failed call leaves the asset, its rights record, and all
// user indices exactly as they were.
package asset_mgmt_i

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ajmanlove/hyperledger-sandbox/access_ctrl"
	"github.com/ajmanlove/hyperledger-sandbox/custom_errors"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"
	"github.com/ajmanlove/hyperledger-sandbox/internal/common/global"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

var logger = slog.Default().With("component", "asset_mgmt")

// assetRegistryImpl is the default implementation of the AssetRegistry interface.
type assetRegistryImpl struct {
	stub     shim.ChaincodeStubInterface
	callerId string
}

// ------------------------------------------------------
// ----------------- EXPORTED FUNCTIONS -----------------
// ------------------------------------------------------

// GetAssetRegistry constructs and returns an assetRegistryImpl instance.
func GetAssetRegistry(stub shim.ChaincodeStubInterface, callerId string) assetRegistryImpl {
	return assetRegistryImpl{stub: stub, callerId: callerId}
}

// GetStub documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetStub() shim.ChaincodeStubInterface {
	return registry.stub
}

// GetCallerId documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetCallerId() string {
	return registry.callerId
}

// CreateRequest documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) CreateRequest(requestees []string, request data_model.ReinsuranceRequest) (data_model.ReinsuranceRequest, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if len(requestees) == 0 {
		return data_model.ReinsuranceRequest{}, errors.New("At least one requestee is required")
	}

	requestId, counterKey, counterValue, err := registry.allocateAssetId(global.REQUEST_ID_PREFIX)
	if err != nil {
		return data_model.ReinsuranceRequest{}, err
	}

	now := registry.txTimestamp()
	request.Id = requestId
	request.Status = data_model.STATUS_OPEN
	request.Requestor = registry.callerId
	request.Requestees = requestees
	request.Created = now
	request.Updated = now

	rights := data_model.AssetRecord{}
	rights.Init()
	rights.AssignUserRights(registry.callerId, []data_model.AssetRight{data_model.RIGHT_OWNER, data_model.RIGHT_VIEWER})
	for _, requestee := range requestees {
		rights.GiveRight(requestee, data_model.RIGHT_VIEWER)
	}

	ownerAssets, err := registry.getUserAssets(registry.callerId)
	if err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	ownerAssets.TrackSubmission(request)

	requesteeAssets := make(map[string]data_model.UserAssetsRecord)
	for _, requestee := range requestees {
		// an owner naming themselves as requestee already holds rights
		if requestee == registry.callerId {
			continue
		}
		assets, err := registry.getUserAssets(requestee)
		if err != nil {
			return data_model.ReinsuranceRequest{}, err
		}
		assets.TrackRequest(request)
		requesteeAssets[requestee] = assets
	}

	// write phase
	if err := registry.stub.PutState(counterKey, counterValue); err != nil {
		return data_model.ReinsuranceRequest{}, errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: counterKey}).Error())
	}
	if err := registry.putRequest(request); err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	if err := registry.putRightsRecord(requestId, rights); err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	if err := registry.putUserAssets(registry.callerId, ownerAssets); err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	for requestee, assets := range requesteeAssets {
		if err := registry.putUserAssets(requestee, assets); err != nil {
			return data_model.ReinsuranceRequest{}, err
		}
	}

	logger.Info("created request", "requestId", requestId, "requestor", registry.callerId)
	return request, nil
}

// GetRequest documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetRequest(requestId string) (data_model.ReinsuranceRequest, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	rights, exists, err := registry.getRightsRecord(requestId)
	if err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	// unknown id and missing rights are indistinguishable to the caller
	if !exists || !access_ctrl.HasRight(rights, registry.callerId, data_model.RIGHT_VIEWER) {
		return data_model.ReinsuranceRequest{}, access_ctrl.DenyRead(requestId)
	}
	return registry.loadRequest(requestId)
}

// CreateProposal documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) CreateProposal(requestId string, contractText string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	rights, exists, err := registry.getRightsRecord(requestId)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if !exists {
		return data_model.ReinsuranceBid{}, errors.WithStack(&custom_errors.AssetNotFoundError{AssetId: requestId})
	}
	if err := access_ctrl.AssertRight(requestId, rights, registry.callerId, data_model.RIGHT_VIEWER); err != nil {
		logger.Error("propose denied", "requestId", requestId, "caller", registry.callerId)
		return data_model.ReinsuranceBid{}, err
	}

	request, err := registry.loadRequest(requestId)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if request.Requestor == registry.callerId {
		return data_model.ReinsuranceBid{}, errors.WithStack(&custom_errors.InvalidActorError{
			UserId: registry.callerId, Action: "propose on", AssetId: requestId,
		})
	}

	proposalId, counterKey, counterValue, err := registry.allocateAssetId(global.PROPOSAL_ID_PREFIX)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}

	now := registry.txTimestamp()
	bid := data_model.ReinsuranceBid{
		Id:           proposalId,
		RequestId:    requestId,
		Requestor:    request.Requestor,
		Bidder:       registry.callerId,
		ContractText: contractText,
		Created:      now,
		Updated:      now,
		UpdatedBy:    registry.callerId,
		Status:       data_model.STATUS_BID,
	}

	// the proposal is visible to its two negotiating parties only; other
	// requestees of the same request hold nothing on it
	proposalRights := data_model.AssetRecord{}
	proposalRights.Init()
	proposalRights.GiveRight(bid.Bidder, data_model.RIGHT_VIEWER)
	proposalRights.AssignUserRights(bid.Requestor, []data_model.AssetRight{data_model.RIGHT_VIEWER, data_model.RIGHT_APPROVAL})

	bidderAssets, err := registry.getUserAssets(bid.Bidder)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	bidderAssets.TrackProposal(bid)
	// the invitation is resolved once the requestee has proposed
	delete(bidderAssets.Requests, requestId)

	ownerAssets, err := registry.getUserAssets(bid.Requestor)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	ownerAssets.TrackProposal(bid)

	// write phase
	if err := registry.stub.PutState(counterKey, counterValue); err != nil {
		return data_model.ReinsuranceBid{}, errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: counterKey}).Error())
	}
	if err := registry.putBid(bid); err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if err := registry.putRightsRecord(proposalId, proposalRights); err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if err := registry.putUserAssets(bid.Bidder, bidderAssets); err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if err := registry.putUserAssets(bid.Requestor, ownerAssets); err != nil {
		return data_model.ReinsuranceBid{}, err
	}

	logger.Info("created proposal", "proposalId", proposalId, "requestId", requestId, "bidder", bid.Bidder)
	return bid, nil
}

// GetProposal documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetProposal(proposalId string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	rights, exists, err := registry.getRightsRecord(proposalId)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if !exists || !access_ctrl.HasRight(rights, registry.callerId, data_model.RIGHT_VIEWER) {
		return data_model.ReinsuranceBid{}, access_ctrl.DenyRead(proposalId)
	}
	return registry.loadBid(proposalId)
}

// TransitionProposal documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) TransitionProposal(proposalId string, newStatus string, newText string, required data_model.AssetRight) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	rights, exists, err := registry.getRightsRecord(proposalId)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if !exists {
		return data_model.ReinsuranceBid{}, errors.WithStack(&custom_errors.AssetNotFoundError{AssetId: proposalId})
	}
	if !access_ctrl.HasRight(rights, registry.callerId, required) {
		if access_ctrl.HasRight(rights, registry.callerId, data_model.RIGHT_VIEWER) {
			// a party to the negotiation, but not the one allowed to do this
			return data_model.ReinsuranceBid{}, errors.WithStack(&custom_errors.InvalidActorError{
				UserId: registry.callerId, Action: actionForStatus(newStatus), AssetId: proposalId,
			})
		}
		return data_model.ReinsuranceBid{}, access_ctrl.AssertRight(proposalId, rights, registry.callerId, required)
	}

	bid, err := registry.loadBid(proposalId)
	if err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	if !data_model.ValidTransition(bid.Status, newStatus) {
		return data_model.ReinsuranceBid{}, errors.WithStack(&custom_errors.InvalidTransitionError{
			ProposalId: proposalId, From: bid.Status, To: newStatus,
		})
	}

	bid.Status = newStatus
	if len(newText) > 0 {
		bid.ContractText = newText
	}
	bid.Updated = registry.txTimestamp()
	bid.UpdatedBy = registry.callerId

	partyAssets := make(map[string]data_model.UserAssetsRecord)
	for _, party := range bid.Parties() {
		assets, err := registry.getUserAssets(party)
		if err != nil {
			return data_model.ReinsuranceBid{}, err
		}
		if data_model.IsTerminalStatus(newStatus) {
			assets.CloseProposal(bid)
		} else {
			assets.TrackProposal(bid)
		}
		partyAssets[party] = assets
	}

	// write phase
	if err := registry.putBid(bid); err != nil {
		return data_model.ReinsuranceBid{}, err
	}
	for party, assets := range partyAssets {
		if err := registry.putUserAssets(party, assets); err != nil {
			return data_model.ReinsuranceBid{}, err
		}
	}

	logger.Info("proposal transition", "proposalId", proposalId, "status", newStatus, "actor", registry.callerId)
	return bid, nil
}

// GetUserAssets documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetUserAssets() (data_model.UserAssetsRecord, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return registry.getUserAssets(registry.callerId)
}

// GetAssetRights documentation can be found in asset_registry.go.
func (registry assetRegistryImpl) GetAssetRights(userId string, assetId string) (data_model.AssetRightsResponse, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	rights, exists, err := registry.getRightsRecord(assetId)
	if err != nil {
		return data_model.AssetRightsResponse{}, err
	}
	if !exists {
		return data_model.BuildAssetRightsResponse(false, nil), nil
	}
	return data_model.BuildAssetRightsResponse(true, rights.UserRights(userId)), nil
}

// ------------------------------------------------------
// ----------------- HELPER FUNCTIONS -------------------
// ------------------------------------------------------

// allocateAssetId reserves the next id in the given namespace. The counter
// write is returned to the caller so it lands in the write phase together
// with the rest of the mutation.
func (registry assetRegistryImpl) allocateAssetId(prefix string) (string, string, []byte, error) {
	counterKey := global.COUNTER_PREFIX + prefix
	counterBytes, err := registry.stub.GetState(counterKey)
	if err != nil {
		return "", "", nil, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: counterKey, LedgerItem: "id counter"}).Error())
	}
	next := 1
	if len(counterBytes) > 0 {
		current, err := strconv.Atoi(string(counterBytes))
		if err != nil {
			return "", "", nil, errors.Wrapf(err, "Corrupt id counter %v", counterKey)
		}
		next = current + 1
	}
	assetId := fmt.Sprintf("%s-%d", prefix, next)

	// must not happen under correct allocation
	existing, err := registry.stub.GetState(assetId)
	if err != nil {
		return "", "", nil, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: assetId, LedgerItem: "asset"}).Error())
	}
	if len(existing) > 0 {
		return "", "", nil, errors.WithStack(&custom_errors.ConflictError{AssetId: assetId})
	}
	return assetId, counterKey, []byte(strconv.Itoa(next)), nil
}

func (registry assetRegistryImpl) txTimestamp() uint64 {
	ts, err := registry.stub.GetTxTimestamp()
	if err != nil || ts == nil {
		return 0
	}
	return uint64(ts.Seconds)
}

func (registry assetRegistryImpl) getRightsRecord(assetId string) (data_model.AssetRecord, bool, error) {
	record := data_model.AssetRecord{}
	ledgerKey := global.ASSET_RIGHTS_PREFIX + assetId
	recordBytes, err := registry.stub.GetState(ledgerKey)
	if err != nil {
		return record, false, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: ledgerKey, LedgerItem: "rights record"}).Error())
	}
	if len(recordBytes) == 0 {
		record.Init()
		return record, false, nil
	}
	if err := record.Decode(recordBytes); err != nil {
		return record, false, errors.Wrap(err, (&custom_errors.UnmarshalError{Type: "AssetRecord"}).Error())
	}
	return record, true, nil
}

func (registry assetRegistryImpl) putRightsRecord(assetId string, record data_model.AssetRecord) error {
	recordBytes, err := record.Encode()
	if err != nil {
		return errors.Wrap(err, (&custom_errors.MarshalError{Type: "AssetRecord"}).Error())
	}
	ledgerKey := global.ASSET_RIGHTS_PREFIX + assetId
	if err := registry.stub.PutState(ledgerKey, recordBytes); err != nil {
		return errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: ledgerKey}).Error())
	}
	return nil
}

func (registry assetRegistryImpl) getUserAssets(userId string) (data_model.UserAssetsRecord, error) {
	record := data_model.UserAssetsRecord{}
	ledgerKey := global.USER_ASSETS_PREFIX + userId
	recordBytes, err := registry.stub.GetState(ledgerKey)
	if err != nil {
		return record, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: ledgerKey, LedgerItem: "user assets record"}).Error())
	}
	if len(recordBytes) == 0 {
		record.Init()
		return record, nil
	}
	if err := record.Decode(recordBytes); err != nil {
		return record, errors.Wrap(err, (&custom_errors.UnmarshalError{Type: "UserAssetsRecord"}).Error())
	}
	return record, nil
}

func (registry assetRegistryImpl) putUserAssets(userId string, record data_model.UserAssetsRecord) error {
	recordBytes, err := record.Encode()
	if err != nil {
		return errors.Wrap(err, (&custom_errors.MarshalError{Type: "UserAssetsRecord"}).Error())
	}
	ledgerKey := global.USER_ASSETS_PREFIX + userId
	if err := registry.stub.PutState(ledgerKey, recordBytes); err != nil {
		return errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: ledgerKey}).Error())
	}
	return nil
}

func (registry assetRegistryImpl) loadRequest(requestId string) (data_model.ReinsuranceRequest, error) {
	request := data_model.ReinsuranceRequest{}
	requestBytes, err := registry.stub.GetState(requestId)
	if err != nil {
		return request, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: requestId, LedgerItem: "request"}).Error())
	}
	if len(requestBytes) == 0 {
		return request, errors.WithStack(&custom_errors.AssetNotFoundError{AssetId: requestId})
	}
	if err := request.Decode(requestBytes); err != nil {
		return request, errors.Wrap(err, (&custom_errors.UnmarshalError{Type: "ReinsuranceRequest"}).Error())
	}
	return request, nil
}

func (registry assetRegistryImpl) putRequest(request data_model.ReinsuranceRequest) error {
	requestBytes, err := request.Encode()
	if err != nil {
		return errors.Wrap(err, (&custom_errors.MarshalError{Type: "ReinsuranceRequest"}).Error())
	}
	if err := registry.stub.PutState(request.Id, requestBytes); err != nil {
		return errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: request.Id}).Error())
	}
	return nil
}

func (registry assetRegistryImpl) loadBid(proposalId string) (data_model.ReinsuranceBid, error) {
	bid := data_model.ReinsuranceBid{}
	bidBytes, err := registry.stub.GetState(proposalId)
	if err != nil {
		return bid, errors.Wrap(err, (&custom_errors.GetLedgerError{LedgerKey: proposalId, LedgerItem: "proposal"}).Error())
	}
	if len(bidBytes) == 0 {
		return bid, errors.WithStack(&custom_errors.AssetNotFoundError{AssetId: proposalId})
	}
	if err := bid.Decode(bidBytes); err != nil {
		return bid, errors.Wrap(err, (&custom_errors.UnmarshalError{Type: "ReinsuranceBid"}).Error())
	}
	return bid, nil
}

func (registry assetRegistryImpl) putBid(bid data_model.ReinsuranceBid) error {
	bidBytes, err := bid.Encode()
	if err != nil {
		return errors.Wrap(err, (&custom_errors.MarshalError{Type: "ReinsuranceBid"}).Error())
	}
	if err := registry.stub.PutState(bid.Id, bidBytes); err != nil {
		return errors.Wrap(err, (&custom_errors.PutLedgerError{LedgerKey: bid.Id}).Error())
	}
	return nil
}

func actionForStatus(newStatus string) string {
	switch newStatus {
	case data_model.STATUS_ACCEPTED:
		return "accept"
	case data_model.STATUS_REJECTED:
		return "reject"
	case data_model.STATUS_COUNTER:
		return "counter"
	default:
		return "transition"
	}
}
