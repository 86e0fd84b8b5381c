package usecase

import (
	"time"

	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/infra"
	"github.com/secmon-lab/codeql-fly/pkg/utils/retry"
)

const defaultPushAttempts = 3

type UseCase struct {
	clients *infra.Clients

	pushAttempts  int
	pushBaseDelay time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithPushRetry sets how many times a report commit is attempted and the
// initial backoff between attempts
func WithPushRetry(attempts int, baseDelay time.Duration) Option {
	return func(x *UseCase) {
		if attempts > 0 {
			x.pushAttempts = attempts
		}
		x.pushBaseDelay = baseDelay
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		pushAttempts:  defaultPushAttempts,
		pushBaseDelay: retry.DefaultBaseDelay,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
