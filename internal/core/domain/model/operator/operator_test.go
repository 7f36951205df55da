package operator_test

import (
	"testing"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/operator"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperator(t *testing.T) {
	o, err := operator.NewOperator(kernel.NewUUID(), "  Suresh ", "98450")
	require.NoError(t, err)
	assert.Equal(t, "Suresh", o.Name())
	require.NoError(t, o.Validate())

	_, err = operator.NewOperator(kernel.NewUUID(), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero *operator.Operator
	require.ErrorIs(t, zero.Validate(), operator.ErrOperatorIsNotConstructed)
}
