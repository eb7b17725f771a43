package app

import (
	"github.com/mondialsim/mondial/internal/domain/bracket"
	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTemplate sets the knockout bracket template.
func WithTemplate(t *bracket.Template) Option {
	return func(s *Service) {
		if t != nil {
			s.template = t
		}
	}
}

// WithMatchEngine replaces the default match engine.
func WithMatchEngine(e *match.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.matches = e
		}
	}
}

// WithFinalCommentary toggles commentary generation for the final.
func WithFinalCommentary(enabled bool) Option {
	return func(s *Service) {
		s.finalCommentary = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
