/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// global package contains constants shared across all packages.
// This should be the lowest level package (below data_model and custom_errors).
package global

///////////////////////////////////////////////////////
// Asset id allocation

// REQUEST_ID_PREFIX is the id namespace for reinsurance requests.
// Allocated ids are of the form "rrq-1", "rrq-2", ...
const REQUEST_ID_PREFIX = "rrq"

// PROPOSAL_ID_PREFIX is the id namespace for reinsurance proposals.
// Allocated ids are of the form "rpr-1", "rpr-2", ...
const PROPOSAL_ID_PREFIX = "rpr"

// COUNTER_PREFIX prefixes the ledger keys that hold the id allocation counters.
const COUNTER_PREFIX = "counter_"

///////////////////////////////////////////////////////
// Ledger key namespaces

// Assets themselves are stored under their raw asset id; the id prefixes above
// keep the request and proposal key spaces disjoint.

// ASSET_RIGHTS_PREFIX prefixes the ledger key of an asset's rights record.
const ASSET_RIGHTS_PREFIX = "rights_"

// USER_ASSETS_PREFIX prefixes the ledger key of a user's asset record.
const USER_ASSETS_PREFIX = "userassets_"

// ENROLLEE_PREFIX prefixes the ledger key of an enrollment record.
const ENROLLEE_PREFIX = "enrollee_"

///////////////////////////////////////////////////////
// Events

// REQUEST_EVENT_NAME is the chaincode event emitted when a request is submitted.
const REQUEST_EVENT_NAME = "reinsurance_request_event"

///////////////////////////////////////////////////////
// Caller identity

// TRANSIENT_ID_KEY is the transient map key carrying the caller's enrollment id.
const TRANSIENT_ID_KEY = "id"

// ENROLLMENT_ID_ATTRIBUTE is the certificate attribute carrying the caller's
// enrollment id.
const ENROLLMENT_ID_ATTRIBUTE = "enrollmentId"
