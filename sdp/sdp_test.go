package sdp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidLine(t *testing.T) {
	for _, line := range []string{"v=0", "o=x", "s= ", "i=a", "u=b", "e=c", "p=d", "c=e", "b=f", "z=g", "k=h", "a=i", "t=j", "r=k", "m=l"} {
		require.True(t, isValidLine(line), line)
	}

	for _, line := range []string{"", "v", "v=", "vv=0", "x=1", "V=0", "=v0", " v=0", "1=2", "é=1"} {
		require.False(t, isValidLine(line), "%q", line)
	}
}

func TestLineTypeKnown(t *testing.T) {
	known := "vosiuepcbzkatrm"
	for c := 0; c < 256; c++ {
		want := false
		for i := 0; i < len(known); i++ {
			if known[i] == byte(c) {
				want = true
			}
		}
		require.Equal(t, want, LineType(c).Known(), "%q", rune(c))
	}
}

func TestEnumerations(t *testing.T) {
	require.True(t, NetworkInternet.Valid())
	require.False(t, NetworkType("ATM").Valid())
	require.True(t, TypeIPv4.Valid())
	require.True(t, TypeIPv6.Valid())
	require.False(t, AddressType("IP5").Valid())
	require.False(t, AddressType("").Valid())
}

func TestErrorFormatting(t *testing.T) {
	err := atLine(grammarError("bad %s", "thing"), 3, OriginField)
	require.EqualError(t, err, "sdp: line 3 (o=): bad thing")

	// existing line context is kept
	err = atLine(err, 7, VersionField)
	require.EqualError(t, err, "sdp: line 3 (o=): bad thing")

	other := errors.New("plain")
	require.Equal(t, other, atLine(other, 1, VersionField))

	require.EqualError(t, &Error{Kind: KindIO}, "sdp: i/o failure")
	require.EqualError(t, &Error{Kind: KindIO, Msg: "read failed", Err: other}, "sdp: read failed: plain")
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := orderingError("missing")
	require.ErrorIs(t, err, ErrOrdering)
	require.NotErrorIs(t, err, ErrFieldGrammar)
	require.NotErrorIs(t, err, ErrValidation)
	require.NotErrorIs(t, err, ErrIO)

	// a concrete error is not a sentinel for another concrete error
	require.NotErrorIs(t, err, orderingError("missing"))
}
