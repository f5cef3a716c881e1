package behaviour

import (
	"GopherFX/internal/renderer"
)

// CameraBehaviour animates the viewer camera. Start runs once before the
// first Update.
type CameraBehaviour interface {
	Start(camera *renderer.Camera)
	Update(camera *renderer.Camera, deltaTime float32)
}

type BehaviourWrapper struct {
	Behaviour CameraBehaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour CameraBehaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

func (m *BehaviourManager) Remove(behaviour CameraBehaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			// Remove by swapping with last element and truncating
			m.behaviours[i] = m.behaviours[len(m.behaviours)-1]
			m.behaviours = m.behaviours[:len(m.behaviours)-1]
			return
		}
	}
}

// Len returns the number of managed behaviours.
func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) UpdateAll(camera *renderer.Camera, deltaTime float32) {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start(camera)
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.Update(camera, deltaTime)
	}
}
