package hostcfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "hostcfg context key: CurrentUserKey", hostcfg.CurrentUserKey.String())
	require.Equal(t, "hostcfg context key: RequestIDKey", hostcfg.RequestIDKey.String())
}
