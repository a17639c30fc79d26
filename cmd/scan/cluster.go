package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-scan/internal/config"
	"github.com/dd0wney/cluso-scan/internal/edgelist"
	"github.com/dd0wney/cluso-scan/internal/progress"
	"github.com/dd0wney/cluso-scan/pkg/clusterengine"
	"github.com/dd0wney/cluso-scan/pkg/logging"
	"github.com/dd0wney/cluso-scan/pkg/metrics"
	"github.com/dd0wney/cluso-scan/pkg/scan"
	"github.com/dd0wney/cluso-scan/pkg/similarity"
)

var (
	configPath    string
	similarityStr string
	numSamples    int
	seed          uint64
	mu            uint32
	epsilon       float64
	outputFormat  string
	noProgress    bool
)

func clusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster [edgelist-path]",
		Short: "Build the similarity index and run SCAN clustering",
		Long: `cluster reads a plain-text edge list (one "u v" pair per line), builds
the similarity/neighbor-order/core-order indices, and reports the SCAN
clustering at the given (mu, epsilon).

Examples:
  scan cluster graph.edges
  scan cluster --mu 4 --epsilon 0.7 graph.edges
  scan cluster --similarity approx_cosine --num-samples 256 graph.edges
  scan cluster --output json graph.edges`,
		Args: cobra.ExactArgs(1),
		RunE: runCluster,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&similarityStr, "similarity", "s", "", "Similarity measure: cosine, jaccard, approx_cosine, approx_jaccard")
	cmd.Flags().IntVar(&numSamples, "num-samples", 0, "SimHash/MinHash fingerprint width (required for approx_* measures)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for the approximate measures")
	cmd.Flags().Uint32Var(&mu, "mu", 0, "Minimum closed-neighborhood size for a core vertex")
	cmd.Flags().Float64Var(&epsilon, "epsilon", -1, "Minimum structural similarity for an epsilon-neighbor")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: text, json")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the build progress bar")

	return cmd
}

func runCluster(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	measure, err := similarity.ParseMeasure(cfg.Similarity)
	if err != nil {
		return err
	}
	opts := similarity.Options{Measure: measure, NumSamples: cfg.NumSamples, Seed: cfg.Seed}

	graph, err := edgelist.Read(args[0])
	if err != nil {
		return err
	}

	reporter := progress.New(cfg.Progress && !noProgress && cfg.Output != "json", 3)
	logger := logging.NewDefaultLogger()

	idx, err := scan.Build(graph, opts,
		scan.WithLogger(logger),
		scan.WithMetrics(metrics.DefaultRegistry()),
		scan.WithPhaseHook(func(phase logging.BuildPhase) { reporter.Phase(string(phase)) }))
	reporter.Done()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	clustering, err := idx.Cluster(cfg.Mu, float32(cfg.Epsilon))
	if err != nil {
		return fmt.Errorf("cluster: %w", err)
	}

	return report(clustering, cfg.Output)
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("similarity") {
		cfg.Similarity = similarityStr
	}
	if cmd.Flags().Changed("num-samples") {
		cfg.NumSamples = numSamples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("mu") {
		cfg.Mu = mu
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFormat
	}
}

type vertexReport struct {
	Vertex  int    `json:"vertex"`
	Role    string `json:"role"`
	Cluster *int32 `json:"cluster,omitempty"`
}

func report(c *clusterengine.Clustering, format string) error {
	if format == "json" {
		rows := make([]vertexReport, 0, c.Len())
		for v := 0; v < c.Len(); v++ {
			rows = append(rows, vertexRow(c, v))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	core, border, unclustered := 0, 0, 0
	for v := 0; v < c.Len(); v++ {
		switch {
		case c.IsCore(v):
			core++
		case c.ClusterOf(v) == clusterengine.Unclustered:
			unclustered++
		default:
			border++
		}
	}
	fmt.Printf("vertices: %d  core: %d  border: %d  unclustered: %d\n", c.Len(), core, border, unclustered)
	for v := 0; v < c.Len(); v++ {
		row := vertexRow(c, v)
		if row.Cluster == nil {
			fmt.Printf("%d\t%s\tunclustered\n", v, row.Role)
			continue
		}
		fmt.Printf("%d\t%s\tcluster=%d\n", v, row.Role, *row.Cluster)
	}
	return nil
}

func vertexRow(c *clusterengine.Clustering, v int) vertexReport {
	role := "border"
	switch {
	case c.IsCore(v):
		role = "core"
	case c.ClusterOf(v) == clusterengine.Unclustered:
		role = "unclustered"
	}
	row := vertexReport{Vertex: v, Role: role}
	if id := c.ClusterOf(v); id != clusterengine.Unclustered {
		row.Cluster = &id
	}
	return row
}
