package vision

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenmiles/odometer-rewards/pkg/cache"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (p *stubProvider) Complete(ctx context.Context, prompt string, image []byte) (string, error) {
	p.calls++
	return p.response, p.err
}

type memoryCache struct {
	values map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.values[key] = value
	return nil
}

func newValidator(p CompletionProvider, c cache.Cache) *Validator {
	return NewValidator(p, c, slog.Default())
}

func TestAnalyze(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &stubProvider{response: `{"vehicle_type": "sedan", "quality": "good", "mileage_readable": true, "confidence": 0.92, "insights": ["clear photo"]}`}
		v := newValidator(provider, cache.NewMaybe(nil))

		analysis, err := v.Analyze(context.Background(), "img-1", []byte("jpeg"))

		assert.NoError(t, err)
		assert.Equal(t, "sedan", analysis.VehicleType)
		assert.Equal(t, "good", analysis.Quality)
		assert.True(t, analysis.MileageReadable)
		assert.Equal(t, 0.92, analysis.Confidence)
	})

	t.Run("Provider Failure Degrades", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("model unavailable")}
		v := newValidator(provider, cache.NewMaybe(nil))

		analysis, err := v.Analyze(context.Background(), "img-1", []byte("jpeg"))

		assert.NoError(t, err)
		assert.Equal(t, "poor", analysis.Quality)
		assert.False(t, analysis.MileageReadable)
		assert.Equal(t, 0.0, analysis.Confidence)
	})

	t.Run("Malformed JSON Degrades", func(t *testing.T) {
		provider := &stubProvider{response: "I cannot assess this image."}
		v := newValidator(provider, cache.NewMaybe(nil))

		analysis, err := v.Analyze(context.Background(), "img-1", []byte("jpeg"))

		assert.NoError(t, err)
		assert.Equal(t, "poor", analysis.Quality)
	})

	t.Run("Cache Hit Skips Provider", func(t *testing.T) {
		provider := &stubProvider{response: `{"quality": "good", "mileage_readable": true, "confidence": 0.9}`}
		c := newMemoryCache()
		v := newValidator(provider, c)

		_, err := v.Analyze(context.Background(), "img-1", []byte("jpeg"))
		assert.NoError(t, err)
		_, err = v.Analyze(context.Background(), "img-1", []byte("jpeg"))
		assert.NoError(t, err)

		assert.Equal(t, 1, provider.calls)
	})
}

func TestDetectVehicle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &stubProvider{response: `{"type": "sedan", "make": "Tesla", "model": "Model 3", "year": 2022, "confidence": 0.88}`}
		v := newValidator(provider, cache.NewMaybe(nil))

		detection, err := v.DetectVehicle(context.Background(), "img-1", []byte("jpeg"))

		assert.NoError(t, err)
		assert.Equal(t, "Tesla", detection.Make)
		assert.Equal(t, "Model 3", detection.Model)
		assert.Equal(t, 2022, *detection.Year)
	})

	t.Run("Provider Failure Propagates", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("model unavailable")}
		v := newValidator(provider, cache.NewMaybe(nil))

		_, err := v.DetectVehicle(context.Background(), "img-1", []byte("jpeg"))

		assert.Error(t, err)
	})

	t.Run("Malformed JSON Propagates", func(t *testing.T) {
		provider := &stubProvider{response: "not json"}
		v := newValidator(provider, cache.NewMaybe(nil))

		_, err := v.DetectVehicle(context.Background(), "img-1", []byte("jpeg"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "malformed JSON")
	})
}

func TestValidateOCR(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &stubProvider{response: `{"is_valid": true, "confidence": 0.95, "suggested_mileage": 45231}`}
		v := newValidator(provider, cache.NewMaybe(nil))

		validation, err := v.ValidateOCR(context.Background(), "img-1", []byte("jpeg"), 45231)

		assert.NoError(t, err)
		assert.True(t, validation.IsValid)
		assert.Equal(t, 45231.0, *validation.SuggestedMileage)
	})

	t.Run("No Suggested Mileage", func(t *testing.T) {
		provider := &stubProvider{response: `{"is_valid": false, "confidence": 0.4, "suggested_mileage": null}`}
		v := newValidator(provider, cache.NewMaybe(nil))

		validation, err := v.ValidateOCR(context.Background(), "img-1", []byte("jpeg"), 45231)

		assert.NoError(t, err)
		assert.False(t, validation.IsValid)
		assert.Nil(t, validation.SuggestedMileage)
	})

	t.Run("Distinct Candidates Get Distinct Cache Keys", func(t *testing.T) {
		provider := &stubProvider{response: `{"is_valid": true, "confidence": 0.9}`}
		c := newMemoryCache()
		v := newValidator(provider, c)

		_, err := v.ValidateOCR(context.Background(), "img-1", []byte("jpeg"), 45231)
		assert.NoError(t, err)
		_, err = v.ValidateOCR(context.Background(), "img-1", []byte("jpeg"), 99999)
		assert.NoError(t, err)

		assert.Equal(t, 2, provider.calls)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences(`{"a": 1}`))
}
