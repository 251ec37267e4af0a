package rpc

import "time"

// Timestamp is the wire form of an instant: a seconds+nanoseconds pair, the
// representation every date uses when crossing an internal call boundary.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

func NewTimestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

func (ts *Timestamp) TimePtr() *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time()
	return &t
}
