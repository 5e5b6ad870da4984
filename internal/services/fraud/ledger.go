package fraud

import "sync"

// BlockedLedger stores blocked transactions most recent first. Appends
// are ordered by the ledger's own lock, independently of the profile
// locks: different accounts may block concurrently. Capacity and
// retention are the owner's concern; the engine only appends.
type BlockedLedger interface {
	Append(rec BlockedRecord)
	List() []BlockedRecord
}

// MemoryBlockedLedger is the in-process BlockedLedger.
type MemoryBlockedLedger struct {
	mu      sync.Mutex
	records []BlockedRecord
}

func NewMemoryBlockedLedger() *MemoryBlockedLedger {
	return &MemoryBlockedLedger{}
}

func (l *MemoryBlockedLedger) Append(rec BlockedRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, BlockedRecord{})
	copy(l.records[1:], l.records)
	l.records[0] = rec
}

// List returns a copy of the ledger, most recent first.
func (l *MemoryBlockedLedger) List() []BlockedRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]BlockedRecord, len(l.records))
	copy(out, l.records)
	return out
}
