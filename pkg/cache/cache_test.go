package cache

import (
	"context"
	"testing"
	"time"
)

func TestKeyNamespacing(t *testing.T) {
	k1 := Key(NamespaceAnalysis, "s3://bucket/upload1.jpg")
	k2 := Key(NamespaceOcr, "s3://bucket/upload1.jpg")
	k3 := Key(NamespaceAnalysis, "s3://bucket/upload2.jpg")

	if k1 == k2 {
		t.Fatalf("same image in different namespaces must not collide: %s", k1)
	}
	if k1 == k3 {
		t.Fatalf("different images must not collide: %s", k1)
	}
	// Same image, same namespace, deterministic.
	if k1 != Key(NamespaceAnalysis, "s3://bucket/upload1.jpg") {
		t.Fatal("cache key is not deterministic")
	}
}

func TestMaybe_NilCacheAlwaysMisses(t *testing.T) {
	m := NewMaybe(nil)

	if err := m.Set(context.Background(), "k", "v", time.Hour); err != nil {
		t.Fatalf("Set on absent cache must not error: %v", err)
	}

	_, hit, err := m.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get on absent cache must not error: %v", err)
	}
	if hit {
		t.Fatal("absent cache must always miss")
	}
}

type fakeCache struct {
	values map[string]string
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func TestMaybe_DelegatesWhenPresent(t *testing.T) {
	inner := &fakeCache{values: map[string]string{}}
	m := NewMaybe(inner)

	if err := m.Set(context.Background(), "k", "v", time.Hour); err != nil {
		t.Fatal(err)
	}

	v, hit, err := m.Get(context.Background(), "k")
	if err != nil || !hit || v != "v" {
		t.Fatalf("expected hit with value v, got %q hit=%v err=%v", v, hit, err)
	}
}
