package signaling

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/nostressdev/signaling/sdp"
	"github.com/sirupsen/logrus"
)

// NegotiatorConfig describes the local endpoint written into every origin
// line the negotiator creates.
type NegotiatorConfig struct {
	Username    string
	Address     string
	AddressType sdp.AddressType
	SessionName string
}

// Negotiator runs the offer/answer exchange for one session. The session
// id is fixed at construction; the session version grows with every
// description it creates.
type Negotiator struct {
	mu sync.Mutex

	config         NegotiatorConfig
	sessID         string
	sessVersion    uint64
	signalingState SignalingState
	isClosed       bool

	currentLocalDescription  *SessionDescription
	pendingLocalDescription  *SessionDescription
	currentRemoteDescription *SessionDescription
	pendingRemoteDescription *SessionDescription
}

func NewNegotiator(config NegotiatorConfig) *Negotiator {
	if config.Address == "" {
		config.Address = "0.0.0.0"
	}
	if config.AddressType == "" {
		config.AddressType = sdp.TypeIPv4
	}
	if config.SessionName == "" {
		config.SessionName = "-"
	}

	return &Negotiator{
		config:         config,
		sessID:         strconv.FormatInt(rand.Int63(), 10),
		signalingState: SignalingStateStable,
	}
}

func (n *Negotiator) SignalingState() SignalingState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.signalingState
}

func (n *Negotiator) LocalDescription() *SessionDescription {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pendingLocalDescription != nil {
		return n.pendingLocalDescription
	}
	return n.currentLocalDescription
}

func (n *Negotiator) RemoteDescription() *SessionDescription {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pendingRemoteDescription != nil {
		return n.pendingRemoteDescription
	}
	return n.currentRemoteDescription
}

func (n *Negotiator) CreateOffer() (*SessionDescription, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isClosed {
		return nil, makeError(ErrInvalidState, "negotiator is closed")
	}
	if n.signalingState != SignalingStateStable && n.signalingState != SignalingStateHaveLocalOffer {
		return nil, makeError(ErrInvalidState, "signaling state is neither stable nor have-local-offer")
	}
	return n.createDescription(SdpTypeOffer)
}

func (n *Negotiator) CreateAnswer() (*SessionDescription, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isClosed {
		return nil, makeError(ErrInvalidState, "negotiator is closed")
	}
	if n.signalingState != SignalingStateHaveRemoteOffer && n.signalingState != SignalingStateHaveLocalPranswer {
		return nil, makeError(ErrInvalidState, "signaling state is neither have-remote-offer nor have-local-pranswer")
	}
	return n.createDescription(SdpTypeAnswer)
}

func (n *Negotiator) createDescription(typ SdpType) (*SessionDescription, error) {
	origin, err := sdp.NewOriginatorBuilder().
		WithUsername(n.config.Username).
		WithID(n.sessID).
		WithVersion(strconv.FormatUint(n.sessVersion, 10)).
		WithAddressType(n.config.AddressType).
		WithUnicastAddress(n.config.Address).
		Build()
	if err != nil {
		return nil, wrapError(ErrInvalidModification, "bad origin", err)
	}

	d, err := sdp.NewBuilder().
		WithOriginator(origin).
		WithSessionName(n.config.SessionName).
		Build()
	if err != nil {
		return nil, wrapError(ErrInvalidModification, "bad descriptor", err)
	}

	desc, err := NewSessionDescription(typ, d)
	if err != nil {
		return nil, err
	}
	n.sessVersion++

	logrus.WithFields(logrus.Fields{
		"function":     "createDescription",
		"type":         typ,
		"sess_id":      n.sessID,
		"sess_version": origin.Version(),
	}).Debug("Created session description")

	return desc, nil
}

func (n *Negotiator) SetLocalDescription(desc *SessionDescription) error {
	return n.apply(desc, local)
}

func (n *Negotiator) SetRemoteDescription(desc *SessionDescription) error {
	return n.apply(desc, remote)
}

func (n *Negotiator) apply(desc *SessionDescription, dir direction) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isClosed {
		return makeError(ErrInvalidState, "negotiator is closed")
	}
	if desc == nil {
		return makeError(ErrInvalidModification, "missing session description")
	}

	if desc.Descriptor == nil && desc.Type != SdpTypeRollback {
		parsed, err := ParseSessionDescription(desc.Type, desc.SDP)
		if err != nil {
			return err
		}
		desc = parsed
	}

	to, ok := nextState(n.signalingState, dir, desc.Type)
	if !ok {
		return makeError(ErrInvalidState, "cannot apply "+desc.Type.String()+" in state "+string(n.signalingState))
	}

	switch {
	case desc.Type == SdpTypeRollback:
		n.pendingLocalDescription = nil
		n.pendingRemoteDescription = nil
	case to == SignalingStateStable && dir == local:
		n.currentLocalDescription = desc
		n.currentRemoteDescription = n.pendingRemoteDescription
		n.pendingLocalDescription = nil
		n.pendingRemoteDescription = nil
	case to == SignalingStateStable && dir == remote:
		n.currentRemoteDescription = desc
		n.currentLocalDescription = n.pendingLocalDescription
		n.pendingLocalDescription = nil
		n.pendingRemoteDescription = nil
	case dir == local:
		n.pendingLocalDescription = desc
	default:
		n.pendingRemoteDescription = desc
	}

	logrus.WithFields(logrus.Fields{
		"function": "apply",
		"local":    bool(dir),
		"type":     desc.Type,
		"from":     n.signalingState,
		"to":       to,
	}).Debug("Signaling state changed")

	n.signalingState = to
	return nil
}

// Close is idempotent.
func (n *Negotiator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.isClosed = true
	n.signalingState = SignalingStateClosed
}
