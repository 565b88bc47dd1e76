package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateInputValidate(t *testing.T) {
	in := &EstimateInput{GrossIncome: dec("50000"), FilingStatus: Single}
	assert.NoError(t, in.Validate())

	in.FilingStatus = "WIDOW"
	assert.ErrorIs(t, in.Validate(), ErrInvalidFilingStatus)

	in.FilingStatus = Single
	in.GrossIncome = dec("-1")
	err := in.Validate()
	require.Error(t, err)
	assert.Equal(t, "grossIncome: must be non-negative", err.Error())

	var nilInput *EstimateInput
	assert.ErrorIs(t, nilInput.Validate(), ErrIncompleteInput)
}
