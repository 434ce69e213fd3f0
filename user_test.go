package hostcfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
)

func TestUserScrub(t *testing.T) {
	// Arrange
	u := hostcfg.User{Name: "tom", Password: "hunter2"}

	// Act
	actual := u.Scrub()

	// Assert
	require.Equal(t, "tom", actual.Name)
	require.Equal(t, hostcfg.PasswordMask, actual.Password)
	require.Equal(t, "hunter2", u.Password)
}
