// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

// Gateway is a resource handler that exposes admin-only routes.
type Gateway interface {
	RegisterAdminRoutes(r chi.Router, guard *middleware.Guard)
}

type Handler struct {
	dbPing     func(ctx context.Context) error
	redisPing  func(ctx context.Context) error
	redisStats func() core.RedisStats
	gateways   []Gateway
	started    time.Time
}

type HandlerConfig struct {
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
	RedisStats func() core.RedisStats
	Gateways   []Gateway
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		dbPing:     cfg.DBPing,
		redisPing:  cfg.RedisPing,
		redisStats: cfg.RedisStats,
		gateways:   cfg.Gateways,
		started:    time.Now(),
	}
}

// RegisterRoutes mounts every gateway's admin routes and the stats
// endpoints behind authentication and RequireAdmin.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	guard *middleware.Guard,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(guard.RequireAdmin)

		for _, g := range h.gateways {
			g.RegisterAdminRoutes(r, guard)
		}

		r.Get("/admin/stats", h.GetSystemStats)
		r.Get("/admin/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := SystemStatsResponse{
		Database: h.dbStatus(ctx),
		Redis:    h.redisStatus(ctx),
		Runtime:  h.runtimeStats(),
	}

	core.OK(w, response)
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.runtimeStats())
}

func (h *Handler) dbStatus(ctx context.Context) DatabaseStatus {
	if h.dbPing == nil {
		return DatabaseStatus{}
	}

	start := time.Now()
	err := h.dbPing(ctx)
	return DatabaseStatus{
		Healthy: err == nil,
		Latency: time.Since(start).String(),
	}
}

func (h *Handler) redisStatus(ctx context.Context) RedisStatus {
	if h.redisPing == nil {
		return RedisStatus{}
	}

	status := RedisStatus{
		Configured: true,
		Healthy:    h.redisPing(ctx) == nil,
	}
	if h.redisStats != nil {
		stats := h.redisStats()
		status.Stats = &stats
	}
	return status
}

func (h *Handler) runtimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
		Uptime:       time.Since(h.started).Round(time.Second).String(),
	}
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"mongodb"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
}

type RedisStatus struct {
	Configured bool             `json:"configured"`
	Healthy    bool             `json:"healthy"`
	Stats      *core.RedisStats `json:"stats,omitempty"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
	Uptime       string `json:"uptime"`
}
