package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyFromString(t *testing.T) {
	req := require.New(t)

	p, err := PolicyFromString("")
	req.NoError(err)
	req.Equal(DropFrame, p.OnBackPressure("a"))

	p, err = PolicyFromString("kick")
	req.NoError(err)
	req.Equal(KickMember, p.OnBackPressure("a"))

	_, err = PolicyFromString("explode")
	req.Error(err)
}
