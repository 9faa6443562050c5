package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Automattic/elasticsearch-langdetect/config"
	"github.com/Automattic/elasticsearch-langdetect/data"
	"github.com/Automattic/elasticsearch-langdetect/detect"
	"github.com/Automattic/elasticsearch-langdetect/langmap"
	"github.com/Automattic/elasticsearch-langdetect/profile"
	"github.com/Automattic/elasticsearch-langdetect/telemetry"
	"github.com/Automattic/elasticsearch-langdetect/telemetry/metrics"
)

var (
	detectJSON bool
	detectFile string
)

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Identify the language of text",
	Long: `Identify the language of text given as an argument, via --file, or
on stdin when neither is supplied.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "print results as JSON")
	detectCmd.Flags().StringVar(&detectFile, "file", "", "read input text from this file when no text argument is given (instead of stdin)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, detectFile)
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

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

	opts := []detect.Option{detect.WithLogger(logger), detect.WithMetrics(metrics.NewDetector())}
	if len(settings.Map) > 0 {
		opts = append(opts, detect.WithLanguageMap(langmap.Map(settings.Map)))
	}

	d, err := detect.New(profiles, detCfg, opts...)
	if err != nil {
		return fmt.Errorf("langdetect: %w", err)
	}

	results := d.DetectAll(text)
	return printResults(cmd.OutOrStdout(), results, detectJSON)
}

func readInput(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

func printResults(w io.Writer, results []detect.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "no language detected")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\n", r.Code, r.Probability)
	}
	return nil
}
