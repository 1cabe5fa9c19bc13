package cache

import (
	"log"
	"sync"
	"time"
)

/*
reaper is the background task that reclaims expired entries independent of
client traffic. It is a plain goroutine on a ticker with an explicit stop
signal, owned by the cache that started it and torn down deterministically
by Close. Nothing here relies on finalizers.

Each tick calls Cleanup through the cache's normal lock, so the reaper
competes with client calls like any other caller and never blocks them for
longer than one sweep.
*/
type reaper struct {
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func startReaper(c *Cache, interval time.Duration) *reaper {
	r := &reaper{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.run(c)
	return r
}

func (r *reaper) run(c *Cache) {
	defer close(r.done)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-t.C:
			r.tick(c)
		}
	}
}

// tick runs one sweep. A panic out of a sweep is logged and swallowed so
// a single bad tick cannot end all future reclamation.
func (r *reaper) tick(c *Cache) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("cache: reaper sweep failed: %v", p)
		}
	}()
	c.Cleanup()
}

// close signals the loop to stop and waits until it has exited, so no
// tick can fire after close returns. Safe to call more than once.
func (r *reaper) close() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}
