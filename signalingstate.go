package signaling

type SignalingState string

const (
	SignalingStateStable             SignalingState = "stable"
	SignalingStateHaveLocalOffer     SignalingState = "have-local-offer"
	SignalingStateHaveRemoteOffer    SignalingState = "have-remote-offer"
	SignalingStateHaveLocalPranswer  SignalingState = "have-local-pranswer"
	SignalingStateHaveRemotePranswer SignalingState = "have-remote-pranswer"
	SignalingStateClosed             SignalingState = "closed"
)

type direction bool

const (
	local  direction = true
	remote direction = false
)

type transitionKey struct {
	from SignalingState
	dir  direction
	typ  SdpType
}

// transitions is the offer/answer state table of RFC 8829 §4.1.
var transitions = map[transitionKey]SignalingState{
	{SignalingStateStable, local, SdpTypeOffer}:                 SignalingStateHaveLocalOffer,
	{SignalingStateStable, remote, SdpTypeOffer}:                SignalingStateHaveRemoteOffer,
	{SignalingStateHaveLocalOffer, local, SdpTypeOffer}:         SignalingStateHaveLocalOffer,
	{SignalingStateHaveLocalOffer, remote, SdpTypePranswer}:     SignalingStateHaveRemotePranswer,
	{SignalingStateHaveLocalOffer, remote, SdpTypeAnswer}:       SignalingStateStable,
	{SignalingStateHaveRemoteOffer, remote, SdpTypeOffer}:       SignalingStateHaveRemoteOffer,
	{SignalingStateHaveRemoteOffer, local, SdpTypePranswer}:     SignalingStateHaveLocalPranswer,
	{SignalingStateHaveRemoteOffer, local, SdpTypeAnswer}:       SignalingStateStable,
	{SignalingStateHaveLocalPranswer, local, SdpTypePranswer}:   SignalingStateHaveLocalPranswer,
	{SignalingStateHaveLocalPranswer, local, SdpTypeAnswer}:     SignalingStateStable,
	{SignalingStateHaveRemotePranswer, remote, SdpTypePranswer}: SignalingStateHaveRemotePranswer,
	{SignalingStateHaveRemotePranswer, remote, SdpTypeAnswer}:   SignalingStateStable,
}

func nextState(from SignalingState, dir direction, typ SdpType) (SignalingState, bool) {
	if typ == SdpTypeRollback {
		if from == SignalingStateStable || from == SignalingStateClosed {
			return from, false
		}
		return SignalingStateStable, true
	}
	to, ok := transitions[transitionKey{from, dir, typ}]
	return to, ok
}
