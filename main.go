package main

import (
	"context"
	"time"

	"github.com/tuannh982/go-commons/collections"
	"github.com/tuannh982/go-commons/lazy"
	"github.com/tuannh982/go-commons/promise"

	log "github.com/sirupsen/logrus"
)

func addNumbers(a, b int, delay time.Duration) promise.Computation[int] {
	return func(ctx context.Context) (int, error) {
		select {
		case <-time.After(delay):
			return a + b, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

func main() {
	logger := log.WithFields(log.Fields{"app": "go-commons"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	prices := collections.NewOrderedMapOf(
		collections.Entry[int]{Key: "apple", Value: 100},
		collections.Entry[int]{Key: "banana", Value: 40},
	)
	prices.Put("cherry", 250)
	doubled := collections.MapValues(prices, func(cents int, _ int) int {
		return cents * 2
	})
	total := collections.Reduce(doubled, func(acc int, cents int, _ string) int {
		return acc + cents
	}, 0)
	logger.Infof("keys=%v total=%d", doubled.Keys(), total)

	ctx := context.Background()
	sum, err := promise.WithTimeout(ctx, 500*time.Millisecond, addNumbers(3, 4, 100*time.Millisecond))
	logger.Infof("fast add: sum=%d err=%v", sum, err)
	_, err = promise.WithTimeout(ctx, 100*time.Millisecond, addNumbers(3, 4, time.Second))
	logger.Infof("slow add: err=%v", err)

	cached := lazy.Of(func() (int, error) {
		logger.Info("computing lazy value")
		return 42, nil
	})
	v, _ := cached.Get()
	v, _ = cached.Get()
	logger.Infof("lazy value=%d", v)
}
