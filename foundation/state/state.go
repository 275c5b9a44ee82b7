package state

import "sync"

type Service int

const (
	Transcriber Service = iota
	Visualization
	Redis
)

type State struct {
	sync.RWMutex

	Transcriber   bool
	Visualization bool
	Redis         bool
}

func NewState() *State {
	return &State{}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Transcriber:
			return s.Transcriber

		case Visualization:
			return s.Visualization

		case Redis:
			return s.Redis
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Transcriber:
			s.Transcriber = state

		case Visualization:
			s.Visualization = state

		case Redis:
			s.Redis = state
		}
	}
}
