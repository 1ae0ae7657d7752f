package auth

// SessionCleanupJob sweeps expired sessions. Registered with the
// background scheduler; the ingestion and query paths stay
// request-scoped.
type SessionCleanupJob struct {
	sessions *SessionStore
}

// NewSessionCleanupJob creates the cleanup job for a session store.
func NewSessionCleanupJob(sessions *SessionStore) *SessionCleanupJob {
	return &SessionCleanupJob{sessions: sessions}
}

// Name implements scheduler.Job
func (j *SessionCleanupJob) Name() string {
	return "session_cleanup"
}

// Run implements scheduler.Job
func (j *SessionCleanupJob) Run() error {
	j.sessions.Cleanup()
	return nil
}
