package token_bucket

import (
	"sync"
	"time"
)

/*
Классический token bucket: токены копятся с постоянной скоростью до capacity,
каждый запрос забирает один токен. Дробные токены не теряются между вызовами.
Keyed держит отдельный бакет на каждый ключ (пользователь, адрес клиента).
*/

type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// full сообщает, что бакет восполнился и его можно выбросить без потери состояния.
func (t *TokenBucket) full() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return t.tokens >= t.capacity
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// Keyed - набор независимых бакетов с одинаковыми параметрами.
type Keyed struct {
	capacity   int
	refillRate float64
	now        Clock

	mu      sync.Mutex
	buckets map[string]*TokenBucket
	calls   int
}

const sweepEvery = 1024

func NewKeyed(capacity int, refillRate float64) *Keyed {
	return NewKeyedWithClock(capacity, refillRate, time.Now)
}

func NewKeyedWithClock(capacity int, refillRate float64, now Clock) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		now:        now,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (k *Keyed) AllowKey(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = bucket
	}
	k.calls++
	if k.calls%sweepEvery == 0 {
		k.evictFull()
	}
	k.mu.Unlock()

	return bucket.Allow()
}

// Len - количество бакетов в памяти.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// вызывать под k.mu
func (k *Keyed) evictFull() {
	for key, bucket := range k.buckets {
		if bucket.full() {
			delete(k.buckets, key)
		}
	}
}
