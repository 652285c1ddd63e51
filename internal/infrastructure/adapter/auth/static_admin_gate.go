package auth

import (
	"fmt"
	"strconv"
	"strings"

	authport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/auth"
)

// StaticAdminGate grants admin rights to a fixed set of user IDs
type StaticAdminGate struct {
	ids map[int64]struct{}
}

// NewStaticAdminGate creates a gate for the given IDs
func NewStaticAdminGate(ids []int64) *StaticAdminGate {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &StaticAdminGate{ids: set}
}

// IsAdmin reports whether callerID is configured as an admin
func (g *StaticAdminGate) IsAdmin(callerID int64) bool {
	_, ok := g.ids[callerID]
	return ok
}

// Count returns the number of configured admins
func (g *StaticAdminGate) Count() int {
	return len(g.ids)
}

// ParseAdminIDs parses a comma separated list such as "123, 456"
// Empty entries are skipped; non-positive or non-numeric entries are an error
func ParseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid admin id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var _ authport.AdminGate = (*StaticAdminGate)(nil)
