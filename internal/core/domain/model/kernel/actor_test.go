package kernel_test

import (
	"testing"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	actor, err := kernel.NewActor(id, kernel.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, actor.Validate())
	assert.True(t, actor.ID().IsEqual(id))
	assert.True(t, actor.IsAdmin())

	_, err = kernel.NewActor(kernel.UUID{}, kernel.RoleUser)
	require.Error(t, err)

	_, err = kernel.NewActor(id, kernel.Role("ROOT"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActor_ZeroValue(t *testing.T) {
	var actor kernel.Actor
	require.ErrorIs(t, actor.Validate(), kernel.ErrActorIsNotConstructed)
	assert.False(t, actor.IsAdmin())
}
