package signaling

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nostressdev/signaling/sdp"
	"github.com/stretchr/testify/require"
)

const callSDP = "v=0\r\no=- 599 0 IN IP4 127.0.0.1\r\ns=Call\r\n"

func TestParseSdpType(t *testing.T) {
	for _, raw := range []string{"offer", "pranswer", "answer", "rollback"} {
		typ, err := ParseSdpType(raw)
		require.NoError(t, err)
		require.Equal(t, raw, typ.String())
	}

	_, err := ParseSdpType("Offer")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), ErrSyntax))
}

func TestParseSessionDescription(t *testing.T) {
	// LF endings and odd spacing come back canonical
	desc, err := ParseSessionDescription(SdpTypeOffer, "v=0\no=-  599 0 IN IP4 127.0.0.1\ns=Call\n")
	require.NoError(t, err)
	require.Equal(t, SdpTypeOffer, desc.Type)
	require.Equal(t, callSDP, desc.SDP)
	require.Equal(t, "Call", desc.Descriptor.SessionName())
}

func TestParseSessionDescriptionInvalid(t *testing.T) {
	_, err := ParseSessionDescription(SdpTypeAnswer, "v=1\r\no=- 599 0 IN IP4 127.0.0.1\r\ns=Call\r\n")
	require.Error(t, err)
	require.ErrorIs(t, err, sdp.ErrFieldGrammar)
	require.True(t, strings.HasPrefix(err.Error(), ErrSyntax))

	_, err = ParseSessionDescription(SdpTypeOffer, "s=Call\r\n", sdp.WithStrict(true))
	require.ErrorIs(t, err, sdp.ErrOrdering)
}

func TestRollbackCarriesNoSDP(t *testing.T) {
	desc, err := ParseSessionDescription(SdpTypeRollback, "ignored")
	require.NoError(t, err)
	require.Empty(t, desc.SDP)
	require.Nil(t, desc.Descriptor)

	_, err = NewSessionDescription(SdpTypeOffer, nil)
	require.Error(t, err)
}

func TestSessionDescriptionJSON(t *testing.T) {
	desc, err := ParseSessionDescription(SdpTypeOffer, callSDP)
	require.NoError(t, err)

	data, err := json.Marshal(desc)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"offer","sdp":"v=0\r\no=- 599 0 IN IP4 127.0.0.1\r\ns=Call\r\n"}`, string(data))

	var back SessionDescription
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, desc.Type, back.Type)
	require.Equal(t, desc.SDP, back.SDP)
	require.Equal(t, "599", back.Descriptor.Originator().ID())

	rollback, err := json.Marshal(&SessionDescription{Type: SdpTypeRollback})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"rollback"}`, string(rollback))
}

func TestSessionDescriptionJSONErrors(t *testing.T) {
	cases := []string{
		`{"type":"bogus","sdp":""}`,
		`{"type":"offer","sdp":"o=- 1 1 IN IP4 h\r\n"}`,
		`{"type":"offer","sdp":""}`,
		`not json`,
	}
	for _, data := range cases {
		var desc SessionDescription
		require.Error(t, json.Unmarshal([]byte(data), &desc), data)
	}
}
