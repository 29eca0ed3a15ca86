/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package request_mgmt implements the insurer-facing request workflow:
// submitting a reinsurance request naming the reinsurers invited to bid, and
// reading a request back.
package request_mgmt

import (
	"log/slog"

	"github.com/ajmanlove/hyperledger-sandbox/asset_mgmt/asset_registry"
	"github.com/ajmanlove/hyperledger-sandbox/custom_errors"
	"github.com/ajmanlove/hyperledger-sandbox/data_model"
	"github.com/ajmanlove/hyperledger-sandbox/enrollment_mgmt"
	"github.com/ajmanlove/hyperledger-sandbox/internal/common/global"
	"github.com/ajmanlove/hyperledger-sandbox/utils"

	"github.com/pkg/errors"
)

var logger = slog.Default().With("component", "request_mgmt")

// RequestService executes request operations against a registry acting for one caller.
type RequestService struct {
	Registry asset_registry.AssetRegistry
}

// GetRequestService constructs and returns a RequestService instance.
func GetRequestService(registry asset_registry.AssetRegistry) RequestService {
	return RequestService{Registry: registry}
}

// Submit stores a new reinsurance request and emits a request event naming the
// invited reinsurers and their registered contacts.
// args: [0] requestees (comma-separated), [1] portfolio sha, [2] portfolio url,
// [3] contract text, [4] iSQL schema, [5] iSQL version.
func (s RequestService) Submit(args []string) (data_model.ReinsuranceRequest, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if len(args) != 6 {
		return data_model.ReinsuranceRequest{}, errors.New("Expected 6 args: requestees, portfolioSha, portfolioUrl, contractText, iSQLSchema, iSQLVersion")
	}

	requestees := utils.GetOrderedSet(args[0])
	if len(requestees) == 0 {
		return data_model.ReinsuranceRequest{}, errors.New("At least one requestee is required")
	}

	request := data_model.ReinsuranceRequest{
		PortfolioSHA: args[1],
		PortfolioURL: args[2],
		ContractText: args[3],
		ISQLSchema:   args[4],
		ISQLVersion:  args[5],
	}

	request, err := s.Registry.CreateRequest(requestees, request)
	if err != nil {
		return data_model.ReinsuranceRequest{}, err
	}

	if err := s.emitRequestEvent(request); err != nil {
		return data_model.ReinsuranceRequest{}, err
	}
	return request, nil
}

// GetRequest returns the request with the given id, subject to read rights.
func (s RequestService) GetRequest(requestId string) (data_model.ReinsuranceRequest, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	return s.Registry.GetRequest(requestId)
}

// emitRequestEvent sets the chaincode event for a newly stored request.
// Recipients without an enrolled contact are carried with an empty contact;
// notification delivery is an off-chain concern.
func (s RequestService) emitRequestEvent(request data_model.ReinsuranceRequest) error {
	recipients := make([]data_model.Recipient, 0, len(request.Requestees))
	for _, requestee := range request.Requestees {
		contact, err := enrollment_mgmt.GetContact(s.Registry.GetStub(), requestee)
		if err != nil {
			return err
		}
		recipients = append(recipients, data_model.Recipient{
			RecipientId:      requestee,
			RecipientContact: contact,
		})
	}

	event := data_model.RequestEvent{
		RequestId:   request.Id,
		RequestorId: request.Requestor,
		Recipients:  recipients,
	}
	eventBytes, err := event.Encode()
	if err != nil {
		return errors.Wrap(err, (&custom_errors.MarshalError{Type: "RequestEvent"}).Error())
	}
	if err := s.Registry.GetStub().SetEvent(global.REQUEST_EVENT_NAME, eventBytes); err != nil {
		return errors.Wrapf(err, "Failed to set event %v", global.REQUEST_EVENT_NAME)
	}
	logger.Info("emitted request event", "requestId", request.Id, "recipients", len(recipients))
	return nil
}
