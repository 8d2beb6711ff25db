package store

// VoteMarkerPrefix namespaces the per-poll vote markers.
const VoteMarkerPrefix = "aqala-poll-vote-"

// VoteMarkers records at most one choice per poll for this context. It sits on
// its own KV chain so a full durable store degrades to session scope without
// affecting the aggregate.
type VoteMarkers struct {
	kv KV
}

func NewVoteMarkers(kv KV) *VoteMarkers {
	return &VoteMarkers{kv: kv}
}

// Vote returns the recorded choice for pollID, if any.
func (m *VoteMarkers) Vote(pollID string) (string, bool) {
	return m.kv.Get(VoteMarkerPrefix + pollID)
}

// Record stores the choice. Best-effort; a failed write is ignored.
func (m *VoteMarkers) Record(pollID, choice string) {
	_ = m.kv.Set(VoteMarkerPrefix+pollID, choice)
}
