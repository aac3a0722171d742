package workspace

import "sync"

// includeSet tracks which files of a load have been parsed. Every path
// moves from unvisited to visited exactly once.
type includeSet struct {
	mu      sync.Mutex
	order   []string
	visited map[string]bool
}

func newIncludeSet() *includeSet {
	return &includeSet{visited: make(map[string]bool)}
}

// Add registers path as unvisited unless it is already known.
func (s *includeSet) Add(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visited[path]; ok {
		return false
	}
	s.visited[path] = false
	s.order = append(s.order, path)
	return true
}

// Next marks the oldest unvisited path as visited and returns it.
func (s *includeSet) Next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, path := range s.order {
		if !s.visited[path] {
			s.visited[path] = true
			return path, true
		}
	}
	return "", false
}

func (s *includeSet) Snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[string]bool, len(s.visited))
	for path, visited := range s.visited {
		result[path] = visited
	}
	return result
}
