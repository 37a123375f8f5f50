package session

import "strconv"

// Keys of the persisted blob owned by the session manager.
const (
	KeyID               = "sid"
	KeyStartTime        = "sst"
	KeyInteractionStep  = "sis"
	KeyReturningVisitor = "rv"
)

// Info is the session record stamped on outgoing beacons.
type Info struct {
	ID               string `json:"sId"`
	StartTime        int64  `json:"sST"`
	InteractionStep  int    `json:"sIS"`
	ReturningVisitor bool   `json:"rV"`
	Version          string `json:"v"`
}

// Fields renders the record with its wire field names.
func (i Info) Fields() map[string]string {
	return map[string]string{
		"sId": i.ID,
		"sST": strconv.FormatInt(i.StartTime, 10),
		"sIS": strconv.Itoa(i.InteractionStep),
		"rV":  flag(i.ReturningVisitor),
		"v":   i.Version,
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
