package distribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "distribution_sweeps_total",
		Help: "Number of sweep runs, by sweep kind.",
	}, []string{"sweep"})

	batchesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distribution_batches_submitted_total",
		Help: "Number of batch distributions submitted to the ledger.",
	})

	batchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distribution_batches_failed_total",
		Help: "Number of batch distributions that failed to submit.",
	})

	rewardsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distribution_rewards_confirmed_total",
		Help: "Number of rewards confirmed on-ledger and credited.",
	})

	rewardsReverted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distribution_rewards_reverted_total",
		Help: "Number of rewards observed as reverted on-ledger.",
	})

	missingWallets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distribution_missing_wallets_total",
		Help: "Number of distributable rewards skipped because the owner has no wallet.",
	})
)
