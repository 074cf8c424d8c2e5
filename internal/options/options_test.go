package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type rateConfig struct {
	Rate     float64
	Interval int
	Calls    []string
}

func withRate(rate float64) Option[*rateConfig] {
	return New(func(c *rateConfig) error {
		if rate <= 0 {
			return errors.New("rate must be positive")
		}
		c.Rate = rate
		c.Calls = append(c.Calls, "rate")

		return nil
	})
}

func withInterval(n int) Option[*rateConfig] {
	return NoError(func(c *rateConfig) {
		c.Interval = n
		c.Calls = append(c.Calls, "interval")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &rateConfig{}
		err := Apply(cfg, withInterval(1000), withRate(0.0002))
		require.NoError(t, err)
		require.Equal(t, 0.0002, cfg.Rate)
		require.Equal(t, 1000, cfg.Interval)
		require.Equal(t, []string{"interval", "rate"}, cfg.Calls)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &rateConfig{}
		err := Apply(cfg, withRate(-1), withInterval(5))
		require.Error(t, err)
		require.Contains(t, err.Error(), "rate must be positive")
		require.Zero(t, cfg.Interval)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &rateConfig{}
		err := Apply(cfg, nil, withInterval(7))
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Interval)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &rateConfig{Rate: 0.1}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 0.1, cfg.Rate)
	})
}
