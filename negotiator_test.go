package signaling

import (
	"strings"
	"testing"

	"github.com/nostressdev/signaling/sdp"
	"github.com/stretchr/testify/require"
)

func TestNegotiatorOfferAnswer(t *testing.T) {
	alice := NewNegotiator(NegotiatorConfig{Username: "alice", Address: "10.0.0.1", SessionName: "call"})
	bob := NewNegotiator(NegotiatorConfig{Username: "bob", Address: "::1", AddressType: sdp.TypeIPv6})

	offer, err := alice.CreateOffer()
	require.NoError(t, err)
	require.Equal(t, SdpTypeOffer, offer.Type)
	require.True(t, strings.HasPrefix(offer.SDP, "v=0\r\no=alice "))
	require.Equal(t, "call", offer.Descriptor.SessionName())

	require.NoError(t, alice.SetLocalDescription(offer))
	require.Equal(t, SignalingStateHaveLocalOffer, alice.SignalingState())

	// the peer only sees text
	require.NoError(t, bob.SetRemoteDescription(&SessionDescription{Type: SdpTypeOffer, SDP: offer.SDP}))
	require.Equal(t, SignalingStateHaveRemoteOffer, bob.SignalingState())
	require.Equal(t, "alice", bob.RemoteDescription().Descriptor.Originator().Username())

	answer, err := bob.CreateAnswer()
	require.NoError(t, err)
	require.Equal(t, sdp.TypeIPv6, answer.Descriptor.Originator().AddressType())
	require.Equal(t, "-", answer.Descriptor.SessionName())

	require.NoError(t, bob.SetLocalDescription(answer))
	require.Equal(t, SignalingStateStable, bob.SignalingState())
	require.Equal(t, answer, bob.LocalDescription())

	require.NoError(t, alice.SetRemoteDescription(answer))
	require.Equal(t, SignalingStateStable, alice.SignalingState())
	require.Equal(t, offer, alice.LocalDescription())
	require.Equal(t, answer, alice.RemoteDescription())
}

func TestNegotiatorSessionVersion(t *testing.T) {
	n := NewNegotiator(NegotiatorConfig{})

	first, err := n.CreateOffer()
	require.NoError(t, err)
	second, err := n.CreateOffer()
	require.NoError(t, err)

	o1, o2 := first.Descriptor.Originator(), second.Descriptor.Originator()
	require.Equal(t, o1.ID(), o2.ID())
	require.Equal(t, "0", o1.Version())
	require.Equal(t, "1", o2.Version())
	require.Equal(t, "0.0.0.0", o1.UnicastAddress())
	require.Equal(t, sdp.TypeIPv4, o1.AddressType())
}

func TestNegotiatorInvalidTransitions(t *testing.T) {
	n := NewNegotiator(NegotiatorConfig{})

	_, err := n.CreateAnswer()
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), ErrInvalidState))

	answer, err := ParseSessionDescription(SdpTypeAnswer, callSDP)
	require.NoError(t, err)
	require.Error(t, n.SetRemoteDescription(answer))
	require.Equal(t, SignalingStateStable, n.SignalingState())

	rollback := &SessionDescription{Type: SdpTypeRollback}
	require.Error(t, n.SetLocalDescription(rollback))

	require.Error(t, n.SetLocalDescription(nil))
	require.Error(t, n.SetRemoteDescription(&SessionDescription{Type: SdpTypeOffer, SDP: "garbage"}))
}

func TestNegotiatorPranswerAndRollback(t *testing.T) {
	n := NewNegotiator(NegotiatorConfig{})

	offer, err := n.CreateOffer()
	require.NoError(t, err)
	require.NoError(t, n.SetLocalDescription(offer))

	pranswer, err := ParseSessionDescription(SdpTypePranswer, callSDP)
	require.NoError(t, err)
	require.NoError(t, n.SetRemoteDescription(pranswer))
	require.Equal(t, SignalingStateHaveRemotePranswer, n.SignalingState())

	require.NoError(t, n.SetRemoteDescription(&SessionDescription{Type: SdpTypeRollback}))
	require.Equal(t, SignalingStateStable, n.SignalingState())
	require.Nil(t, n.LocalDescription())
	require.Nil(t, n.RemoteDescription())
}

func TestNegotiatorClose(t *testing.T) {
	n := NewNegotiator(NegotiatorConfig{})
	n.Close()
	n.Close()
	require.Equal(t, SignalingStateClosed, n.SignalingState())

	_, err := n.CreateOffer()
	require.Error(t, err)
	offer, err := ParseSessionDescription(SdpTypeOffer, callSDP)
	require.NoError(t, err)
	require.Error(t, n.SetRemoteDescription(offer))
}
