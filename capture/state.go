// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is a stage of a single capture.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateDraining
	StateResampling
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateDraining:
		return "draining"
	case StateResampling:
		return "resampling"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// session tracks one capture call for logging.
type session struct {
	id    uuid.UUID
	state State
	log   zerolog.Logger
}

func newSession(log zerolog.Logger, id uuid.UUID) *session {
	return &session{
		id:  id,
		log: log.With().Str("window_id", id.String()).Logger(),
	}
}

func (s *session) enter(st State) {
	s.state = st
	s.log.Debug().Stringer("state", st).Msg("capture state")
}

// fail moves to StateFailed and returns err unchanged.
func (s *session) fail(err error) error {
	s.state = StateFailed
	s.log.Debug().
		Stringer("state", StateFailed).
		Str("category", Category(err)).
		Err(err).
		Msg("capture state")
	return err
}
