package storage

// PipelineStore defines the data access the upload pipeline needs end to end:
// the upload row itself, the user's fleet, and reward creation on approval.
type PipelineStore interface {
	UploadStore
	VehicleStore
	RewardManager
}

// SweepStore defines the data access of the periodic sweeps.
type SweepStore interface {
	DistributionStore
	ReconciliationStore
	AccountStore
	UploadReader
}

// Storage defines the root interface for the entire data layer. It composes
// all available storage operations. Components should depend on the more
// granular interfaces (ApiStore, PipelineStore, SweepStore) instead of this
// one.
type Storage interface {
	ApiStore
	PipelineStore
	SweepStore
}
