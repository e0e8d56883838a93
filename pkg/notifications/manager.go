package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Provider interface {
	send(msg Message) error
}

type Manager interface {
	Broadcast(msg Message) error
	AddProvider(provider Provider)
}

type ManagerImpl struct {
	provider []Provider
}

func NewManager() *ManagerImpl {
	return &ManagerImpl{
		provider: []Provider{},
	}
}

func (m *ManagerImpl) AddProvider(provider Provider) {
	m.provider = append(m.provider, provider)
}

// Broadcast delivers the message to every provider in turn. Providers run
// to completion before the process exits, so delivery is synchronous and
// the first failure is returned to drive the exit code.
func (m *ManagerImpl) Broadcast(msg Message) error {
	var firstErr error
	for _, p := range m.provider {
		err := p.send(msg)
		if err != nil {
			logrus.Warnf("cannot send notification: %s", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return fmt.Errorf("could not deliver notification: %s", firstErr)
	}
	return nil
}
