package oracle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"harvester/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackOracle tries providers in order, skipping those with open
// circuits. Credential errors do not fall through: a bad key supplied by the
// caller would be wrong for every provider sharing it, and the caller needs
// to see the credential failure to fix it.
// It implements port.SuggestionOracle.
type FallbackOracle struct {
	oracles  []port.SuggestionOracle
	circuits []*circuitState
	names    []string
}

// NewFallbackOracle creates a FallbackOracle from an ordered list of oracles and their names.
func NewFallbackOracle(oracles []port.SuggestionOracle, names []string) *FallbackOracle {
	circuits := make([]*circuitState, len(oracles))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackOracle{
		oracles:  oracles,
		circuits: circuits,
		names:    names,
	}
}

func (f *FallbackOracle) Suggest(ctx context.Context, input port.SuggestInput) (*port.SuggestOutput, error) {
	now := time.Now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, o := range f.oracles {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("oracle.FallbackOracle: skipping %s (circuit open until %s)", f.names[i], resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := o.Suggest(ctx, input)
		if err == nil {
			return out, nil
		}

		var credErr *CredentialError
		if errors.As(err, &credErr) {
			return nil, err
		}

		log.Printf("oracle.FallbackOracle: %s failed: %v", f.names[i], err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		retryAfter := time.Until(earliestReset)
		if retryAfter < 0 {
			retryAfter = time.Second
		}
		return nil, NewRateLimitError("all", fmt.Errorf("all oracle providers rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("%w: all providers exhausted: %w", ErrSuggestionFailed, lastErr)
}
