/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package access_ctrl

import (
	"testing"

	"github.com/ajmanlove/hyperledger-sandbox/data_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRecord() data_model.AssetRecord {
	record := data_model.AssetRecord{}
	record.Init()
	record.AssignUserRights("insurer1", []data_model.AssetRight{data_model.RIGHT_OWNER, data_model.RIGHT_VIEWER})
	record.GiveRight("reinsurer1", data_model.RIGHT_VIEWER)
	return record
}

func TestHasRight(t *testing.T) {
	record := buildRecord()
	assert.True(t, HasRight(record, "insurer1", data_model.RIGHT_OWNER))
	assert.True(t, HasRight(record, "reinsurer1", data_model.RIGHT_VIEWER))
	assert.False(t, HasRight(record, "reinsurer1", data_model.RIGHT_OWNER))
	assert.False(t, HasRight(record, "stranger", data_model.RIGHT_VIEWER))
}

func TestAssertRight(t *testing.T) {
	record := buildRecord()
	assert.NoError(t, AssertRight("rrq-1", record, "insurer1", data_model.RIGHT_OWNER))

	err := AssertRight("rrq-1", record, "stranger", data_model.RIGHT_VIEWER)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insuffienct rights on asset rrq-1")
}

// Reads of unknown assets and reads without rights must be indistinguishable.
func TestDenyReadMatchesAssertRight(t *testing.T) {
	record := buildRecord()
	denied := DenyRead("rrq-1")
	asserted := AssertRight("rrq-1", record, "stranger", data_model.RIGHT_VIEWER)
	require.Error(t, denied)
	require.Error(t, asserted)
	assert.Equal(t, asserted.Error(), denied.Error())
}
