package stub

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/behavior_testkit/actor"
	"github.com/on-the-ground/behavior_testkit/config"
	"github.com/on-the-ground/behavior_testkit/shared/log"
)

var _ actor.System = (*System)(nil)

// System is a named handle standing in for an actor system.
type System struct {
	name   string
	id     uuid.UUID
	logger *zap.Logger
}

// NewSystem creates a system handle. A nil logger discards everything.
func NewSystem(name string, logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		name:   name,
		id:     uuid.New(),
		logger: logger.With(zap.String("system", name)),
	}
}

// NewSystemFromSettings creates a system handle named and logging as configured.
func NewSystemFromSettings(s config.Settings) (*System, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger, err := log.New(s.Log.Level, s.Log.Format)
	if err != nil {
		return nil, err
	}
	return NewSystem(s.SystemName, logger), nil
}

func (s *System) Name() string        { return s.name }
func (s *System) ID() string          { return s.id.String() }
func (s *System) Logger() *zap.Logger { return s.logger }
