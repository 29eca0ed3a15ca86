/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package data_model

import (
	"encoding/json"
)

///////////////////////////////////////////////////////
// Statuses

// STATUS_OPEN is the status of every reinsurance request; requests do not
// transition in this workflow.
const STATUS_OPEN = "open"

// Proposal statuses. STATUS_ACCEPTED and STATUS_REJECTED are terminal.
const (
	STATUS_BID      = "bid"
	STATUS_COUNTER  = "counter"
	STATUS_ACCEPTED = "accepted"
	STATUS_REJECTED = "rejected"
)

// IsTerminalStatus returns true for statuses that end a proposal's lifecycle.
func IsTerminalStatus(status string) bool {
	return status == STATUS_ACCEPTED || status == STATUS_REJECTED
}

// ValidTransition returns true if a proposal may move from one status to
// another. From bid or counter the reachable statuses are counter, accepted,
// and rejected; no edge re-enters bid and no edge leaves a terminal status.
func ValidTransition(from string, to string) bool {
	switch from {
	case STATUS_BID, STATUS_COUNTER:
		return to == STATUS_COUNTER || to == STATUS_ACCEPTED || to == STATUS_REJECTED
	default:
		return false
	}
}

///////////////////////////////////////////////////////
// Assets

// ReinsuranceRequest is a request submitted by an insurer inviting one or more
// reinsurers to bid. The payload fields (portfolio hash/location, contract
// text, schema text and version) are carried verbatim and never interpreted.
type ReinsuranceRequest struct {
	Id           string   `json:"id"`
	PortfolioSHA string   `json:"portfolioSha"`
	PortfolioURL string   `json:"portfolioUrl"`
	Status       string   `json:"status"`
	Requestor    string   `json:"requestor"`
	Requestees   []string `json:"requestees"`
	ContractText string   `json:"contractText"`
	ISQLSchema   string   `json:"iSQLSchema"`
	ISQLVersion  string   `json:"iSQLVersion"`
	Created      uint64   `json:"created"`
	Updated      uint64   `json:"updated"`
}

// Encode serializes the request for the ledger.
func (r *ReinsuranceRequest) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode deserializes the request from the ledger.
func (r *ReinsuranceRequest) Decode(recordBytes []byte) error {
	return json.Unmarshal(recordBytes, r)
}

// ReinsuranceBid is a proposal made by a reinsurer against a request.
// Requestor is the insurer who owns the originating request, fixed at
// creation; Bidder is the reinsurer who created the proposal. ContractText is
// replaced by each counter-offer; UpdatedBy is the last actor who mutated the
// proposal.
type ReinsuranceBid struct {
	Id           string `json:"id"`
	RequestId    string `json:"requestId"`
	Requestor    string `json:"requestor"`
	Bidder       string `json:"bidder"`
	ContractText string `json:"contractText"`
	Created      uint64 `json:"created"`
	Updated      uint64 `json:"updated"`
	UpdatedBy    string `json:"updatedBy"`
	Status       string `json:"status"`
}

// Parties returns the two negotiating parties of the proposal.
func (r *ReinsuranceBid) Parties() []string {
	return []string{r.Bidder, r.Requestor}
}

// Encode serializes the bid for the ledger.
func (r *ReinsuranceBid) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode deserializes the bid from the ledger.
func (r *ReinsuranceBid) Decode(recordBytes []byte) error {
	return json.Unmarshal(recordBytes, r)
}

///////////////////////////////////////////////////////
// Per-user index

// SubmissionRecord summarizes a request owned by the user.
type SubmissionRecord struct {
	SubmissionId string   `json:"submissionId"`
	Requestees   []string `json:"requestees"`
	Created      uint64   `json:"created"`
	Updated      uint64   `json:"updated"`
}

// RequestRecord summarizes a request the user has been invited to bid on.
type RequestRecord struct {
	SubmissionId string `json:"submissionId"`
	Requestor    string `json:"requestor"`
	Created      uint64 `json:"created"`
	Updated      uint64 `json:"updated"`
}

// ProposalRecord summarizes an active proposal the user is a party to.
// UpdatedBy is the history of actors who mutated the proposal, newest last.
type ProposalRecord struct {
	SubmissionId string   `json:"submissionId"`
	ProposalId   string   `json:"proposalId"`
	Created      uint64   `json:"created"`
	Updated      uint64   `json:"updated"`
	UpdatedBy    []string `json:"updatedBy"`
}

// TerminalRecord summarizes a proposal that has reached accepted or rejected.
type TerminalRecord struct {
	SubmissionId string `json:"submissionId"`
	ProposalId   string `json:"proposalId"`
	Closed       uint64 `json:"closed"`
}

// UserAssetsRecord is the per-identity index over all assets the identity has
// an active relationship with. It is a materialized view derived from the
// assets and rights records; asset_mgmt updates it in the same atomic step as
// the underlying write and nothing else may mutate it.
type UserAssetsRecord struct {
	Submissions map[string]SubmissionRecord `json:"submissions"`
	Requests    map[string]RequestRecord    `json:"requests"`
	Proposals   map[string]ProposalRecord   `json:"proposals"`
	Accepted    map[string]TerminalRecord   `json:"accepted"`
	Rejected    map[string]TerminalRecord   `json:"rejected"`
}

// Init initializes an empty user assets record.
func (r *UserAssetsRecord) Init() {
	r.Submissions = make(map[string]SubmissionRecord)
	r.Requests = make(map[string]RequestRecord)
	r.Proposals = make(map[string]ProposalRecord)
	r.Accepted = make(map[string]TerminalRecord)
	r.Rejected = make(map[string]TerminalRecord)
}

// TrackSubmission records a request owned by this user.
func (r *UserAssetsRecord) TrackSubmission(request ReinsuranceRequest) {
	r.Submissions[request.Id] = SubmissionRecord{
		SubmissionId: request.Id,
		Requestees:   request.Requestees,
		Created:      request.Created,
		Updated:      request.Updated,
	}
}

// TrackRequest records a request this user has been invited to bid on.
func (r *UserAssetsRecord) TrackRequest(request ReinsuranceRequest) {
	r.Requests[request.Id] = RequestRecord{
		SubmissionId: request.Id,
		Requestor:    request.Requestor,
		Created:      request.Created,
		Updated:      request.Updated,
	}
}

// TrackProposal records or refreshes an active proposal entry, appending the
// latest actor to the update history.
func (r *UserAssetsRecord) TrackProposal(bid ReinsuranceBid) {
	record, exists := r.Proposals[bid.Id]
	if !exists {
		record = ProposalRecord{
			SubmissionId: bid.RequestId,
			ProposalId:   bid.Id,
			Created:      bid.Created,
			UpdatedBy:    []string{},
		}
	}
	record.Updated = bid.Updated
	record.UpdatedBy = append(record.UpdatedBy, bid.UpdatedBy)
	r.Proposals[bid.Id] = record
}

// CloseProposal moves a proposal out of the active view into the terminal set
// matching its status. The proposal id is afterwards absent from Proposals and
// present in exactly one of Accepted/Rejected.
func (r *UserAssetsRecord) CloseProposal(bid ReinsuranceBid) {
	delete(r.Proposals, bid.Id)
	terminal := TerminalRecord{
		SubmissionId: bid.RequestId,
		ProposalId:   bid.Id,
		Closed:       bid.Updated,
	}
	if bid.Status == STATUS_ACCEPTED {
		r.Accepted[bid.Id] = terminal
	} else {
		r.Rejected[bid.Id] = terminal
	}
}

// Encode serializes the record for the ledger.
func (r *UserAssetsRecord) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode deserializes the record from the ledger.
func (r *UserAssetsRecord) Decode(recordBytes []byte) error {
	return json.Unmarshal(recordBytes, r)
}
