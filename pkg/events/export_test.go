package events

// IsListening reports whether the listener has an active subscription for
// channel. Test-only accessor for the external test package.
func (l *NotifyListener) IsListening(channel string) bool {
	l.subsMu.RLock()
	defer l.subsMu.RUnlock()
	_, ok := l.subs[channel]
	return ok
}
