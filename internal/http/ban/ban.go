package ban

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// Policy bans a client that collects Strikes rejections within Window.
// A zero Strikes disables banning.
type Policy struct {
	Strikes  int
	Window   time.Duration
	Duration time.Duration
}

func (p Policy) Enabled() bool {
	return p.Strikes > 0
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Store persists strikes, bans and the ban log.
type Store interface {
	IsBanned(ctx context.Context, target string) (bool, error)
	// Strike adds one strike and returns the count inside the current window.
	Strike(ctx context.Context, target string, window time.Duration) (int, error)
	Ban(ctx context.Context, target string, d time.Duration) error
	AppendLog(ctx context.Context, entry BanLogEntry) error
	// DrainLog returns and clears the accumulated log.
	DrainLog(ctx context.Context) ([]BanLogEntry, error)
}

// Banner applies a Policy on top of a Store.
type Banner struct {
	store  Store
	policy Policy
	now    func() time.Time
}

func NewBanner(store Store, policy Policy) *Banner {
	return &Banner{store: store, policy: policy, now: time.Now}
}

func (b *Banner) Policy() Policy {
	return b.policy
}

// IsBanned reports whether target is currently banned. Store failures let the
// request through.
func (b *Banner) IsBanned(ctx context.Context, target string) bool {
	if !b.policy.Enabled() {
		return false
	}
	banned, err := b.store.IsBanned(ctx, target)
	if err != nil {
		log.Printf("ban lookup for %s failed: %v", target, err)
		return false
	}
	return banned
}

// RecordStrike counts one rate-limit rejection and bans target when the
// threshold is reached. It returns true when a ban was issued.
func (b *Banner) RecordStrike(ctx context.Context, target, route string) bool {
	if !b.policy.Enabled() {
		return false
	}
	strikes, err := b.store.Strike(ctx, target, b.policy.Window)
	if err != nil {
		log.Printf("recording strike for %s failed: %v", target, err)
		return false
	}
	if strikes < b.policy.Strikes {
		return false
	}

	if err := b.store.Ban(ctx, target, b.policy.Duration); err != nil {
		log.Printf("banning %s failed: %v", target, err)
		return false
	}
	log.Printf("banned %s for %s after %d strikes on %s", target, b.policy.Duration, strikes, route)
	b.logBanEvent(ctx, target, route, strikes)
	return true
}

func (b *Banner) logBanEvent(ctx context.Context, target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    b.now(),
	}
	if err := b.store.AppendLog(ctx, entry); err != nil {
		log.Printf("failed to append ban log: %v", err)
	}
}

// StartDailyBanSummary logs a digest of the ban log every interval until ctx is done.
func (b *Banner) StartDailyBanSummary(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if summary := b.Summary(ctx); summary != "" {
				log.Print(summary)
			}
		}
	}
}

// Summary drains the ban log and renders it grouped by route and target.
// It returns "" when nothing was logged.
func (b *Banner) Summary(ctx context.Context) string {
	entries, err := b.store.DrainLog(ctx)
	if err != nil {
		log.Printf("failed to read ban log: %v", err)
		return ""
	}
	if len(entries) == 0 {
		return ""
	}

	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	for _, entry := range entries {
		routeCounts[entry.Route]++
		targetCounts[entry.Target]++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ban summary: %d bans\n", len(entries))
	sb.WriteString("by route:\n")
	writeCounts(&sb, routeCounts)
	sb.WriteString("by target:\n")
	writeCounts(&sb, targetCounts)
	return sb.String()
}

func writeCounts(sb *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "  %s: %d\n", k, counts[k])
	}
}
