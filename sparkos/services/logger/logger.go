package logger

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Service drains MsgLogLine messages into the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability

	prefix string
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

// WithPrefix sets a string written before every line.
func (s *Service) WithPrefix(p string) *Service {
	s.prefix = p
	return s
}

func (s *Service) Run(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(s.ep)
		if !ok {
			return
		}
		s.handle(msg)
	}
}

func (s *Service) handle(msg kernel.Message) {
	if s.log == nil {
		return
	}
	if proto.Kind(msg.Kind) != proto.MsgLogLine {
		return
	}
	if s.prefix == "" {
		s.log.WriteLineBytes(msg.Payload())
		return
	}
	s.log.WriteLineString(s.prefix + string(msg.Payload()))
}
