package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect_LoadingWinsRegardlessOfContents(t *testing.T) {
	assert.Equal(t, ScreenLoading, Select(State{Loading: true}))
	assert.Equal(t, ScreenLoading, Select(State{Loading: true, Token: "t1", Role: RoleBuyer}))
}

func TestSelect_NoTokenYieldsWelcome(t *testing.T) {
	assert.Equal(t, ScreenWelcome, Select(State{}))
	// A role remnant without a token must not mount an authenticated tree.
	assert.Equal(t, ScreenWelcome, Select(State{Role: RoleSeller}))
}

func TestSelect_RoleSelectsTree(t *testing.T) {
	assert.Equal(t, ScreenBuyer, Select(State{Token: "t1", Role: RoleBuyer}))
	assert.Equal(t, ScreenSeller, Select(State{Token: "t1", Role: RoleSeller}))
}

func TestSelect_UnknownRoleFallsBackToWelcome(t *testing.T) {
	assert.Equal(t, ScreenWelcome, Select(State{Token: "t1", Role: "admin"}))
}

func TestSelect_IsPure(t *testing.T) {
	s := State{Token: "t1", Role: RoleBuyer}
	assert.Equal(t, Select(s), Select(s))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("buyer")
	assert.NoError(t, err)
	assert.Equal(t, RoleBuyer, r)

	r, err = ParseRole("seller")
	assert.NoError(t, err)
	assert.Equal(t, RoleSeller, r)

	_, err = ParseRole("admin")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "loading", ScreenLoading.String())
	assert.Equal(t, "welcome", ScreenWelcome.String())
	assert.Equal(t, "buyer", ScreenBuyer.String())
	assert.Equal(t, "seller", ScreenSeller.String())
}
