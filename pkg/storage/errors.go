package storage

import "errors"

// ErrUploadNotFound is returned when an upload does not exist.
var ErrUploadNotFound = errors.New("upload not found")

// ErrRewardNotFound is returned when a reward does not exist.
var ErrRewardNotFound = errors.New("reward not found")

// ErrVehicleNotFound is returned when a vehicle does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrAccountNotFound is returned when a user has no account record.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account that already exists.
var ErrAccountExists = errors.New("account already exists")

// ErrRewardNotCancellable is returned when a reward is past the point of
// cancellation, i.e. no longer PENDING/NOT_SENT.
var ErrRewardNotCancellable = errors.New("reward not in a cancellable state")

// ErrRewardNotRetryable is returned when a reward is not FAILED or has
// exhausted its retry budget.
var ErrRewardNotRetryable = errors.New("reward not in a retryable state")

// ErrRewardAlreadyClaimed is returned when a distribution sweep tries to
// claim a reward another sweep has already claimed.
var ErrRewardAlreadyClaimed = errors.New("reward already claimed for distribution")

// ErrRewardNotSent is returned when a confirmation write finds the reward no
// longer in SENT, which means it was already confirmed or failed.
var ErrRewardNotSent = errors.New("reward not in SENT state")

// ErrUploadAlreadyTerminal is returned when a terminal write finds the upload
// already completed or failed.
var ErrUploadAlreadyTerminal = errors.New("upload already in a terminal state")
