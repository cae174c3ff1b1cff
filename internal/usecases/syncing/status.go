package syncing

import "sync"

// SyncStatus é o estado observável da última sincronização
type SyncStatus string

const (
	StatusIdle    SyncStatus = "idle"
	StatusQueued  SyncStatus = "queued"
	StatusRunning SyncStatus = "running"
	StatusDone    SyncStatus = "done"
	StatusFailed  SyncStatus = "failed"
)

// SyncState é o registro único de acompanhamento consultado pelo
// endpoint de status. Rows só tem significado quando Status é done e
// Error só é preenchido quando Status é failed.
type SyncState struct {
	Status  SyncStatus `json:"status"`
	Message string     `json:"message"`
	Rows    int        `json:"linhas"`
	Error   string     `json:"error,omitempty"`
}

// StatusTracker guarda o estado da última sincronização do processo.
// Toda transição substitui o registro inteiro, nunca campo a campo, para
// que um leitor concorrente não observe um estado pela metade.
type StatusTracker struct {
	mu    sync.RWMutex
	state SyncState
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		state: SyncState{Status: StatusIdle, Message: "Aguardando..."},
	}
}

// Set substitui o registro de estado por inteiro
func (t *StatusTracker) Set(state SyncState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
}

// Snapshot retorna uma cópia do registro atual sem bloquear escritas
// além da troca do registro
func (t *StatusTracker) Snapshot() SyncState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}
