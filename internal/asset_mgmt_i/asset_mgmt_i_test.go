/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package asset_mgmt_i_test

import (
	"testing"

	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt/asset_registry"
	"github.com/ajmanlove/hyperledger-sandbox/chaincode"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"
	"github.com/ajmanlove/hyperledger-sandbox/test_utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() *test_utils.MockStub {
	return test_utils.CreateMockStub("reinsurance", chaincode.New())
}

// asUser opens a mock transaction acting for the given user. The returned
// function ends the transaction.
func asUser(stub *test_utils.MockStub, userId string) (asset_registry.AssetRegistry, func()) {
	end := test_utils.SetCaller(stub, userId)
	return asset_mgmt.GetAssetRegistry(stub, userId), end
}

func createRequest(t *testing.T, stub *test_utils.MockStub, requestor string, requestees []string) data_model.ReinsuranceRequest {
	registry, end := asUser(stub, requestor)
	defer end()
	request, err := registry.CreateRequest(requestees, data_model.ReinsuranceRequest{ContractText: "terms v1"})
	require.NoError(t, err)
	return request
}

func createProposal(t *testing.T, stub *test_utils.MockStub, bidder string, requestId string, text string) data_model.ReinsuranceBid {
	registry, end := asUser(stub, bidder)
	defer end()
	bid, err := registry.CreateProposal(requestId, text)
	require.NoError(t, err)
	return bid
}

func TestCreateRequestRightsAndIndices(t *testing.T) {
	stub := setup()
	request := createRequest(t, stub, "insurer1", []string{"reinsurer1", "reinsurer2"})

	assert.Equal(t, "rrq-1", request.Id)
	assert.Equal(t, data_model.STATUS_OPEN, request.Status)
	assert.Equal(t, "insurer1", request.Requestor)
	assert.Equal(t, []string{"reinsurer1", "reinsurer2"}, request.Requestees)

	registry, end := asUser(stub, "insurer1")
	defer end()

	ownerRights, err := registry.GetAssetRights("insurer1", "rrq-1")
	require.NoError(t, err)
	assert.True(t, ownerRights.Exists)
	assert.Equal(t, []data_model.AssetRight{data_model.RIGHT_OWNER, data_model.RIGHT_VIEWER}, ownerRights.Rights)

	requesteeRights, err := registry.GetAssetRights("reinsurer1", "rrq-1")
	require.NoError(t, err)
	assert.Equal(t, []data_model.AssetRight{data_model.RIGHT_VIEWER}, requesteeRights.Rights)

	strangerRights, err := registry.GetAssetRights("stranger", "rrq-1")
	require.NoError(t, err)
	assert.True(t, strangerRights.Exists)
	assert.Empty(t, strangerRights.Rights)

	unknownRights, err := registry.GetAssetRights("insurer1", "rrq-99")
	require.NoError(t, err)
	assert.False(t, unknownRights.Exists)
	assert.Empty(t, unknownRights.Rights)

	ownerAssets, err := registry.GetUserAssets()
	require.NoError(t, err)
	assert.Contains(t, ownerAssets.Submissions, "rrq-1")
	assert.Equal(t, []string{"reinsurer1", "reinsurer2"}, ownerAssets.Submissions["rrq-1"].Requestees)
	assert.Empty(t, ownerAssets.Requests)
}

func TestRequesteeIndexGainsInvitation(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})

	registry, end := asUser(stub, "reinsurer1")
	defer end()
	assets, err := registry.GetUserAssets()
	require.NoError(t, err)
	assert.Contains(t, assets.Requests, "rrq-1")
	assert.Equal(t, "insurer1", assets.Requests["rrq-1"].Requestor)
	assert.Empty(t, assets.Submissions)
}

func TestGetRequestVisibility(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})

	for _, userId := range []string{"insurer1", "reinsurer1"} {
		registry, end := asUser(stub, userId)
		request, err := registry.GetRequest("rrq-1")
		end()
		require.NoError(t, err)
		assert.Equal(t, "terms v1", request.ContractText)
	}

	registry, end := asUser(stub, "stranger")
	defer end()
	_, err := registry.GetRequest("rrq-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insuffienct rights on asset rrq-1")

	// unknown ids must fail with identical wording modulo the id
	_, unknownErr := registry.GetRequest("rrq-99")
	require.Error(t, unknownErr)
	assert.Contains(t, unknownErr.Error(), "Insuffienct rights on asset rrq-99")
}

func TestCreateProposal(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1", "reinsurer2"})
	bid := createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	assert.Equal(t, "rpr-1", bid.Id)
	assert.Equal(t, "rrq-1", bid.RequestId)
	assert.Equal(t, data_model.STATUS_BID, bid.Status)
	assert.Equal(t, "insurer1", bid.Requestor)
	assert.Equal(t, "reinsurer1", bid.Bidder)
	assert.Equal(t, "reinsurer1", bid.UpdatedBy)

	registry, end := asUser(stub, "reinsurer1")
	defer end()

	bidderRights, err := registry.GetAssetRights("reinsurer1", "rpr-1")
	require.NoError(t, err)
	assert.Equal(t, []data_model.AssetRight{data_model.RIGHT_VIEWER}, bidderRights.Rights)

	ownerRights, err := registry.GetAssetRights("insurer1", "rpr-1")
	require.NoError(t, err)
	assert.Equal(t, []data_model.AssetRight{data_model.RIGHT_VIEWER, data_model.RIGHT_APPROVAL}, ownerRights.Rights)

	// proposing resolves the invitation
	assets, err := registry.GetUserAssets()
	require.NoError(t, err)
	assert.NotContains(t, assets.Requests, "rrq-1")
	assert.Contains(t, assets.Proposals, "rpr-1")
	assert.Equal(t, []string{"reinsurer1"}, assets.Proposals["rpr-1"].UpdatedBy)
}

func TestProposalHiddenFromOtherRequestee(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1", "reinsurer2"})
	createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	registry, end := asUser(stub, "reinsurer2")
	defer end()
	_, err := registry.GetProposal("rpr-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insuffienct rights on asset rpr-1")

	rights, err := registry.GetAssetRights("reinsurer2", "rpr-1")
	require.NoError(t, err)
	assert.True(t, rights.Exists)
	assert.Empty(t, rights.Rights)
}

func TestCreateProposalGuards(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})

	owner, end := asUser(stub, "insurer1")
	_, err := owner.CreateProposal("rrq-1", "self deal")
	end()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insurer1 is not permitted to propose on asset rrq-1")

	stranger, end := asUser(stub, "stranger")
	_, err = stranger.CreateProposal("rrq-1", "uninvited")
	end()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insuffienct rights on asset rrq-1")

	bidder, end := asUser(stub, "reinsurer1")
	_, err = bidder.CreateProposal("rrq-99", "ghost")
	end()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such asset id rrq-99")
}

func TestCounterLifecycle(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})
	createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	owner, end := asUser(stub, "insurer1")
	bid, err := owner.TransitionProposal("rpr-1", data_model.STATUS_COUNTER, "owner counter", data_model.RIGHT_VIEWER)
	end()
	require.NoError(t, err)
	assert.Equal(t, data_model.STATUS_COUNTER, bid.Status)
	assert.Equal(t, "owner counter", bid.ContractText)
	assert.Equal(t, "insurer1", bid.UpdatedBy)

	// counter is re-enterable by either party
	bidder, end := asUser(stub, "reinsurer1")
	bid, err = bidder.TransitionProposal("rpr-1", data_model.STATUS_COUNTER, "bidder counter", data_model.RIGHT_VIEWER)
	end()
	require.NoError(t, err)
	assert.Equal(t, "bidder counter", bid.ContractText)

	reader, end := asUser(stub, "insurer1")
	defer end()
	assets, err := reader.GetUserAssets()
	require.NoError(t, err)
	assert.Equal(t, []string{"reinsurer1", "insurer1", "reinsurer1"}, assets.Proposals["rpr-1"].UpdatedBy)
}

func TestAcceptClosesProposalForBothParties(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})
	createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	owner, end := asUser(stub, "insurer1")
	bid, err := owner.TransitionProposal("rpr-1", data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
	end()
	require.NoError(t, err)
	assert.Equal(t, data_model.STATUS_ACCEPTED, bid.Status)
	assert.Equal(t, "bid terms", bid.ContractText, "accept binds the current text")

	for _, userId := range []string{"insurer1", "reinsurer1"} {
		registry, end := asUser(stub, userId)
		assets, err := registry.GetUserAssets()
		end()
		require.NoError(t, err)
		assert.NotContains(t, assets.Proposals, "rpr-1")
		assert.Contains(t, assets.Accepted, "rpr-1")
		assert.Equal(t, "rrq-1", assets.Accepted["rpr-1"].SubmissionId)
	}

	// terminal proposals stay readable
	reader, end := asUser(stub, "reinsurer1")
	defer end()
	got, err := reader.GetProposal("rpr-1")
	require.NoError(t, err)
	assert.Equal(t, data_model.STATUS_ACCEPTED, got.Status)
}

func TestTerminalProposalRefusesTransitions(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})
	createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	owner, end := asUser(stub, "insurer1")
	_, err := owner.TransitionProposal("rpr-1", data_model.STATUS_REJECTED, "", data_model.RIGHT_APPROVAL)
	end()
	require.NoError(t, err)

	owner, end = asUser(stub, "insurer1")
	defer end()
	_, err = owner.TransitionProposal("rpr-1", data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Illegal transition from rejected to accepted on proposal rpr-1")

	_, err = owner.TransitionProposal("rpr-1", data_model.STATUS_COUNTER, "late counter", data_model.RIGHT_VIEWER)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Illegal transition")
}

func TestApprovalGate(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})
	createProposal(t, stub, "reinsurer1", "rrq-1", "bid terms")

	// the bidder can read the proposal but cannot close it
	bidder, end := asUser(stub, "reinsurer1")
	defer end()
	_, err := bidder.TransitionProposal("rpr-1", data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reinsurer1 is not permitted to accept asset rpr-1")

	_, err = bidder.TransitionProposal("rpr-1", data_model.STATUS_REJECTED, "", data_model.RIGHT_APPROVAL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reinsurer1 is not permitted to reject asset rpr-1")

	// a non-party gets the rights failure, not the actor failure
	stranger, endStranger := asUser(stub, "stranger")
	defer endStranger()
	_, err = stranger.TransitionProposal("rpr-1", data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insuffienct rights on asset rpr-1")
}

func TestIdAllocationSequence(t *testing.T) {
	stub := setup()
	first := createRequest(t, stub, "insurer1", []string{"reinsurer1"})
	second := createRequest(t, stub, "insurer2", []string{"reinsurer1"})
	assert.Equal(t, "rrq-1", first.Id)
	assert.Equal(t, "rrq-2", second.Id)

	firstBid := createProposal(t, stub, "reinsurer1", "rrq-1", "a")
	secondBid := createProposal(t, stub, "reinsurer1", "rrq-2", "b")
	assert.Equal(t, "rpr-1", firstBid.Id)
	assert.Equal(t, "rpr-2", secondBid.Id)
}

func TestTransitionUnknownProposal(t *testing.T) {
	stub := setup()
	createRequest(t, stub, "insurer1", []string{"reinsurer1"})

	owner, end := asUser(stub, "insurer1")
	defer end()
	_, err := owner.TransitionProposal("rpr-42", data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such asset id rpr-42")
}
