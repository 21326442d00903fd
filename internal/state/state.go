package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type ItemState struct {
	Status      string `json:"status"` // "ok" or "failed"
	Level       int    `json:"level"`
	CommandHash string `json:"command_hash,omitempty"`
	RanAt       string `json:"ran_at"`
}

type State struct {
	Items map[string]ItemState `json:"items"`
}

type Manager struct {
	path  string
	state State
	mu    sync.RWMutex
}

func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "state.json")
	m := &Manager{
		path:  path,
		state: State{Items: make(map[string]ItemState)},
	}
	if err := m.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &m.state)
}

func (m *Manager) save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

func (m *Manager) GetItemState(name string) (ItemState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	is, ok := m.state.Items[name]
	return is, ok
}

func (m *Manager) SetItemState(name string, is ItemState) error {
	m.mu.Lock()
	m.state.Items[name] = is
	m.mu.Unlock()
	return m.save()
}

func (m *Manager) RemoveItemState(name string) error {
	m.mu.Lock()
	delete(m.state.Items, name)
	m.mu.Unlock()
	return m.save()
}

// RecordRun stores the outcome of one item run, stamped with the current time.
func (m *Manager) RecordRun(name string, level int, commandHash string, ok bool) error {
	status := "ok"
	if !ok {
		status = "failed"
	}
	return m.SetItemState(name, ItemState{
		Status:      status,
		Level:       level,
		CommandHash: commandHash,
		RanAt:       time.Now().UTC().Format(time.RFC3339),
	})
}

// UpToDate reports whether the item's last recorded run succeeded with the
// same command content.
func (m *Manager) UpToDate(name, commandHash string) bool {
	is, ok := m.GetItemState(name)
	return ok && is.Status == "ok" && is.CommandHash == commandHash && commandHash != ""
}

func CommandHash(script string) string {
	sum := sha256.Sum256([]byte(script))
	return hex.EncodeToString(sum[:])
}
