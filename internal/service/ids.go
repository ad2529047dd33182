package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// idSeq is shared by every wallet and receipt store in the process, so ids
// minted for different shoppers in the same millisecond never collide.
var idSeq atomic.Uint64

func nextSeq() uint64 {
	return idSeq.Add(1)
}

// stampedID formats <prefix>_<unix ms>_<seq>. The sequence keeps ids unique
// when several are minted in the same millisecond.
func stampedID(prefix string, at time.Time, seq uint64) string {
	return fmt.Sprintf("%s_%d_%d", prefix, at.UnixMilli(), seq)
}

// receiptID formats RCPT_<BASE36 ms>_<seq>.
func receiptID(at time.Time, seq uint64) string {
	return fmt.Sprintf("RCPT_%s_%d", strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36)), seq)
}

// monotonicMillis hands out strictly increasing millisecond stamps.
type monotonicMillis struct {
	mu   sync.Mutex
	last int64
}

func (m *monotonicMillis) next(at time.Time) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms := at.UnixMilli()
	if ms <= m.last {
		ms = m.last + 1
	}
	m.last = ms
	return ms
}
