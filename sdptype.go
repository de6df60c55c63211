package signaling

import "github.com/samber/lo"

type SdpType string

const (
	SdpTypeOffer    SdpType = "offer"
	SdpTypePranswer SdpType = "pranswer"
	SdpTypeAnswer   SdpType = "answer"
	SdpTypeRollback SdpType = "rollback"
)

var sdpTypes = []SdpType{SdpTypeOffer, SdpTypePranswer, SdpTypeAnswer, SdpTypeRollback}

// ParseSdpType accepts the lower-case names used on the wire.
func ParseSdpType(raw string) (SdpType, error) {
	t := SdpType(raw)
	if !lo.Contains(sdpTypes, t) {
		return "", makeError(ErrSyntax, "unknown sdp type "+raw)
	}
	return t, nil
}

func (t SdpType) String() string {
	return string(t)
}
