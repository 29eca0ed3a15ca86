/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package proposal_mgmt implements the negotiation workflow on proposals:
// a reinsurer opens a proposal against a request, either party counters with
// replacement contract text, and the request owner accepts or rejects.
package proposal_mgmt

import (
	"log/slog"

	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt/asset_registry"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/pkg/errors"
)

var logger = slog.Default().With("component", "proposal_mgmt")

// ProposalService executes proposal operations against a registry acting for one caller.
type ProposalService struct {
	Registry asset_registry.AssetRegistry
}

// GetProposalService constructs and returns a ProposalService instance.
func GetProposalService(registry asset_registry.AssetRegistry) ProposalService {
	return ProposalService{Registry: registry}
}

// Propose opens a new proposal in status bid against the given request. The
// caller must be able to read the request and must not be its owner.
func (s ProposalService) Propose(requestId string, contractText string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if utils.IsStringEmpty(contractText) {
		return data_model.ReinsuranceBid{}, errors.New("Contract text must be non-empty")
	}
	return s.Registry.CreateProposal(requestId, contractText)
}

// Counter replaces the proposal's contract text and moves it to status
// counter. Either negotiating party may counter, any number of times, until
// the proposal is terminal.
func (s ProposalService) Counter(proposalId string, contractText string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if utils.IsStringEmpty(contractText) {
		return data_model.ReinsuranceBid{}, errors.New("Contract text must be non-empty")
	}
	return s.Registry.TransitionProposal(proposalId, data_model.STATUS_COUNTER, contractText, data_model.RIGHT_VIEWER)
}

// Accept closes the proposal as accepted, binding its current contract text.
// Reserved for the request owner; sibling proposals on the same request are
// not affected.
func (s ProposalService) Accept(proposalId string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return s.Registry.TransitionProposal(proposalId, data_model.STATUS_ACCEPTED, "", data_model.RIGHT_APPROVAL)
}

// Reject closes the proposal as rejected. Reserved for the request owner.
func (s ProposalService) Reject(proposalId string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return s.Registry.TransitionProposal(proposalId, data_model.STATUS_REJECTED, "", data_model.RIGHT_APPROVAL)
}

// GetProposal returns the proposal with the given id, subject to read rights.
func (s ProposalService) GetProposal(proposalId string) (data_model.ReinsuranceBid, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return s.Registry.GetProposal(proposalId)
}
