package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolvePrincipal(t *testing.T) {
	user := &User{ID: uuid.New()}

	customer := ResolvePrincipal(user, nil)
	assert.Equal(t, RoleCustomer, customer.Role)
	assert.False(t, customer.IsOwner())
	assert.Nil(t, customer.Truck)

	truck := &Truck{ID: uuid.New(), OwnerID: user.ID}
	owner := ResolvePrincipal(user, truck)
	assert.Equal(t, RoleOwner, owner.Role)
	assert.True(t, owner.IsOwner())
	assert.True(t, owner.OwnsTruck(truck.ID))
	assert.False(t, owner.OwnsTruck(uuid.New()))
}

func TestPrincipal_NilIsNotOwner(t *testing.T) {
	var p *Principal
	assert.False(t, p.IsOwner())
	assert.False(t, p.OwnsTruck(uuid.New()))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleOwner.IsValid())
	assert.False(t, Role("merchant").IsValid())
}

func TestLocationStatus_IsValid(t *testing.T) {
	assert.True(t, LocationStatusOpen.IsValid())
	assert.True(t, LocationStatusClosingSoon.IsValid())
	assert.True(t, LocationStatusClosed.IsValid())
	assert.False(t, LocationStatus("busy").IsValid())
}
