package auth

// AdminGate decides whether a caller may run privileged ledger operations
type AdminGate interface {
	// IsAdmin reports whether callerID belongs to the administrator set
	IsAdmin(callerID int64) bool
}
