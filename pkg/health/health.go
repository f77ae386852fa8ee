package health

import (
	"context"
	"errors"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CredentialChecker reports whether the OpenAI credential was configured.
// The service boots without it, but completion calls cannot succeed.
type CredentialChecker struct {
	apiKey string
}

func NewCredentialChecker(apiKey string) *CredentialChecker {
	return &CredentialChecker{apiKey: apiKey}
}

func (c *CredentialChecker) Name() string { return "openai" }

func (c *CredentialChecker) Check(ctx context.Context) error {
	if c.apiKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}
