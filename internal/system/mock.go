package system

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Call records one command invocation made through a MockExecutor.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line renders the call as a single command line for assertions.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockExecutor implements CommandExecutor for testing. It records every
// invocation and lets tests script the outcome of blocking runs.
type MockExecutor struct {
	mu      sync.Mutex
	calls   []Call
	started []*MockProcess

	// RunHook, if set, decides the result of each Run call.
	// When nil, every Run succeeds with empty output.
	RunHook func(Call) ([]byte, error)

	// StartErr, if set, is returned by Start instead of spawning.
	StartErr error

	// LookPathErr, if set, is returned by LookPath.
	LookPathErr error
}

// NewMockExecutor creates a MockExecutor with no scripted behavior.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

func (m *MockExecutor) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	c := Call{Dir: dir, Name: name, Args: args}
	m.mu.Lock()
	m.calls = append(m.calls, c)
	hook := m.RunHook
	m.mu.Unlock()

	if hook != nil {
		return hook(c)
	}
	return nil, nil
}

func (m *MockExecutor) Start(dir, name string, args ...string) (Process, error) {
	c := Call{Dir: dir, Name: name, Args: args}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, c)
	if m.StartErr != nil {
		return nil, m.StartErr
	}

	p := &MockProcess{Pid: 40000 + len(m.started)}
	m.started = append(m.started, p)
	return p, nil
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of all recorded invocations in order.
func (m *MockExecutor) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Started returns the processes spawned via Start.
func (m *MockExecutor) Started() []*MockProcess {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*MockProcess, len(m.started))
	copy(out, m.started)
	return out
}

// MockProcess implements Process for testing.
type MockProcess struct {
	mu     sync.Mutex
	Pid    int
	killed bool

	// KillErr, if set, is returned by Kill.
	KillErr error
}

func (p *MockProcess) PID() int {
	return p.Pid
}

func (p *MockProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.KillErr != nil {
		return p.KillErr
	}
	p.killed = true
	return nil
}

// Killed reports whether Kill was called.
func (p *MockProcess) Killed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

// MockFS implements FileSystem for testing.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	dirs  map[string]bool
	seq   int

	// Error injection
	ReadFileErr  error
	WriteFileErr error
	MkdirAllErr  error
	MkdirTempErr error
	RemoveAllErr error
	StatErr      error
	ReadDirErr   error
	CopyFileErr  error
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFS creates a new MockFS with an empty filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string]*mockFile),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: data, mode: mode}
	m.addParents(path)
}

// AddDir adds a directory to the mock filesystem.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	m.addParents(path)
}

func (m *MockFS) addParents(path string) {
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// GetFile returns the contents of a file in the mock filesystem.
func (m *MockFS) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, false
	}
	return f.data, true
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return f.data, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: data, mode: perm}
	m.addParents(path)
	return nil
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.MkdirAllErr != nil {
		return m.MkdirAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	m.addParents(path)
	return nil
}

func (m *MockFS) MkdirTemp(dir, pattern string) (string, error) {
	if m.MkdirTempErr != nil {
		return "", m.MkdirTempErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if dir == "" {
		dir = "/tmp"
	}
	m.seq++
	path := filepath.Join(dir, fmt.Sprintf("%s%d", pattern, m.seq))
	m.dirs[path] = true
	m.addParents(path)
	return path, nil
}

func (m *MockFS) RemoveAll(path string) error {
	if m.RemoveAllErr != nil {
		return m.RemoveAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := path + string(filepath.Separator)
	for p := range m.files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	return nil
}

func (m *MockFS) Stat(path string) (fs.FileInfo, error) {
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(f.data)), mode: f.mode}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir | 0755, dir: true}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *MockFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true
	}
	return m.dirs[path]
}

func (m *MockFS) IsDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[path]
}

func (m *MockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.dirs[path] {
		return nil, fs.ErrNotExist
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	prefix := path + string(filepath.Separator)

	for p, f := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, string(filepath.Separator)) {
			continue
		}
		if !seen[rest] {
			seen[rest] = true
			entries = append(entries, &mockDirEntry{name: rest, mode: f.mode})
		}
	}
	for p := range m.dirs {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, string(filepath.Separator)) {
			continue
		}
		if !seen[rest] {
			seen[rest] = true
			entries = append(entries, &mockDirEntry{name: rest, mode: fs.ModeDir | 0755, dir: true})
		}
	}
	return entries, nil
}

func (m *MockFS) CopyFile(src, dst string) error {
	if m.CopyFileErr != nil {
		return m.CopyFileErr
	}
	data, err := m.ReadFile(src)
	if err != nil {
		return err
	}
	return m.WriteFile(dst, data, 0644)
}

type mockFileInfo struct {
	name string
	size int64
	mode fs.FileMode
	dir  bool
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	mode fs.FileMode
	dir  bool
}

func (e *mockDirEntry) Name() string               { return e.name }
func (e *mockDirEntry) IsDir() bool                { return e.dir }
func (e *mockDirEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return &mockFileInfo{name: e.name, mode: e.mode, dir: e.dir}, nil }
