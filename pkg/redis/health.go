package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck is the outcome of a ping. Callers map Healthy onto their own status type.
type HealthCheck struct {
	Healthy bool              `json:"healthy"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return HealthCheck{Healthy: false, Details: details}
	}
	details["ping_latency"] = time.Since(start).String()

	if stats := c.Stats(); stats != nil {
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}

	return HealthCheck{Healthy: true, Details: details}
}
