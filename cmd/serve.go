package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Automattic/elasticsearch-langdetect/config"
	"github.com/Automattic/elasticsearch-langdetect/data"
	"github.com/Automattic/elasticsearch-langdetect/detect"
	"github.com/Automattic/elasticsearch-langdetect/langmap"
	"github.com/Automattic/elasticsearch-langdetect/profile"
	"github.com/Automattic/elasticsearch-langdetect/telemetry"
	"github.com/Automattic/elasticsearch-langdetect/telemetry/metrics"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP language detection service",
	Long: `Run an HTTP server exposing /detect for language identification,
/metrics for Prometheus scraping, and /health for liveness checks.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "HTTP listen port")
	rootCmd.AddCommand(serveCmd)
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Results []detect.Result `json:"results"`
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

	logger, err := telemetry.NewLogger(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}
	defer logger.Sync()

	profiles, err := profile.Load(data.Source(), settings.ProfileVariant, settings.Languages)
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

	detCfg, err := settings.ToDetectConfig()
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewDetector()
	m.MustRegister(reg)

	opts := []detect.Option{detect.WithLogger(logger), detect.WithMetrics(m)}
	if len(settings.Map) > 0 {
		opts = append(opts, detect.WithLanguageMap(langmap.Map(settings.Map)))
	}

	d, err := detect.New(profiles, detCfg, opts...)
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

	startTime := time.Now()
	mux := http.NewServeMux()
	mux.HandleFunc("/detect", func(w http.ResponseWriter, r *http.Request) {
		var req detectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "failed to decode request", http.StatusBadRequest)
			logger.Warn("failed to decode detect request", zap.Error(err))
			return
		}
		resp := detectResponse{Results: d.DetectAll(req.Text)}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status string `json:"status"`
			Uptime string `json:"uptime"`
		}{
			Status: "OK",
			Uptime: time.Since(startTime).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	logger.Info("langdetect HTTP service listening", zap.String("port", servePort))
	return http.ListenAndServe(":"+servePort, mux)
}
