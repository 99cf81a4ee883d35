// Package main provides the channelgraph binary entry point. Channelgraph
// maps ion channel biology entities onto a semantic knowledge graph through
// a declared class schema.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Define biology entity classes and register their vocabulary via init()
	_ "github.com/openworm/channelgraph/bio"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/spf13/cobra"

	"github.com/openworm/channelgraph/config"
	"github.com/openworm/channelgraph/graph"
	"github.com/openworm/channelgraph/schema"
	"github.com/openworm/channelgraph/storage"
	biovocab "github.com/openworm/channelgraph/vocabulary/bio"
)

const (
	Version = "0.1.0"
	appName = "channelgraph"
)

func main() {
	// All class-defining packages have initialized; close the schema
	// definition phase before anything else runs.
	schema.Freeze()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   appName,
		Short: "Schema-mapped ion channel biology entities over a semantic graph",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	root.AddCommand(classesCmd())
	root.AddCommand(vocabCmd())
	root.AddCommand(entitiesCmd(&configPath))
	root.AddCommand(configCmd())
	root.AddCommand(versionCmd())

	return root
}

// loadConfig resolves the effective configuration: the explicit path when
// given, the default config file when one exists, built-in defaults
// otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = defaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			return config.DefaultConfig(), nil
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func connectNATS(ctx context.Context, cfg *config.Config) (*natsclient.Client, error) {
	url := cfg.NATS.URL
	if env := os.Getenv("CHANNELGRAPH_NATS_URL"); env != "" {
		url = env
	}
	if url == "" {
		if !cfg.NATS.Embedded {
			return nil, fmt.Errorf("nats.url is required when embedded NATS is disabled")
		}
		url = "nats://localhost:4222"
	}

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	return client, nil
}

// withStore loads the configuration, connects to NATS and hands the entity
// store to fn, closing the connection afterward.
func withStore(ctx context.Context, configPath string, fn func(context.Context, *config.Config, *natsclient.Client, *storage.Store) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	nc, err := connectNATS(ctx, cfg)
	if err != nil {
		return err
	}
	defer nc.Close(ctx)

	js, err := nc.JetStream()
	if err != nil {
		return fmt.Errorf("get JetStream context: %w", err)
	}

	store, err := storage.NewStore(ctx, js, cfg.Store.Bucket, cfg.Store.History)
	if err != nil {
		return err
	}

	return fn(ctx, cfg, nc, store)
}

func entitiesCmd(configPath *string) *cobra.Command {
	entities := &cobra.Command{
		Use:   "entities",
		Short: "Inspect stored entities and publish them to the graph",
	}

	var class string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored entity records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(ctx context.Context, cfg *config.Config, nc *natsclient.Client, store *storage.Store) error {
				var (
					records []*storage.Record
					err     error
				)
				if class != "" {
					records, err = store.ListByClass(ctx, class)
				} else {
					records, err = store.List(ctx)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, records)
			})
		},
	}
	listCmd.Flags().StringVar(&class, "class", "", "restrict to one entity class")

	getCmd := &cobra.Command{
		Use:   "get <entity-id>",
		Short: "Print a stored entity record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(ctx context.Context, cfg *config.Config, nc *natsclient.Client, store *storage.Store) error {
				rec, err := store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, rec)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <entity-id>",
		Short: "Delete a stored entity record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(ctx context.Context, cfg *config.Config, nc *natsclient.Client, store *storage.Store) error {
				if err := store.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}

	publishCmd := &cobra.Command{
		Use:   "publish <entity-id>",
		Short: "Publish a stored entity to the knowledge graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(ctx context.Context, cfg *config.Config, nc *natsclient.Client, store *storage.Store) error {
				rec, err := store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				inst, err := storage.Restore(rec)
				if err != nil {
					return err
				}
				if err := graph.Publish(ctx, nc, inst, cfg.Graph.Subject, cfg.Graph.Source); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published %s to %s\n", inst.ID(), cfg.Graph.Subject)
				return nil
			})
		},
	}

	entities.AddCommand(listCmd)
	entities.AddCommand(getCmd)
	entities.AddCommand(deleteCmd)
	entities.AddCommand(publishCmd)
	return entities
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// classSummary is the JSON shape of a class schema dump.
type classSummary struct {
	Name       string             `json:"name"`
	Parent     string             `json:"parent,omitempty"`
	Attributes []attributeSummary `json:"attributes"`
}

type attributeSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Cardinality string `json:"cardinality"`
	Target      string `json:"target,omitempty"`
	Predicate   string `json:"predicate"`
	Inherited   bool   `json:"inherited,omitempty"`
}

func classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List defined entity classes and their resolved schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries := make([]classSummary, 0)
			for _, c := range schema.Classes() {
				own := make(map[string]bool, len(c.Declarations()))
				for _, d := range c.Declarations() {
					own[d.Name] = true
				}

				s := classSummary{Name: c.Name()}
				if c.Parent() != nil {
					s.Parent = c.Parent().Name()
				}
				for _, d := range c.Schema() {
					a := attributeSummary{
						Name:        d.Name,
						Kind:        kindName(d.Kind),
						Cardinality: cardinalityName(d.Cardinality),
						Predicate:   d.GraphPredicate(),
						Inherited:   !own[d.Name],
					}
					if d.Target != nil {
						a.Target = d.Target.Name()
					}
					s.Attributes = append(s.Attributes, a)
				}
				summaries = append(summaries, s)
			}

			return printJSON(cmd, summaries)
		},
	}
}

func kindName(k schema.Kind) string {
	if k == schema.KindRelationship {
		return "relationship"
	}
	return "datatype"
}

func cardinalityName(c schema.Cardinality) string {
	if c == schema.Many {
		return "many"
	}
	return "one"
}

func vocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [value]",
		Short: "List canonical model types, or normalize a value against them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, biovocab.ModelTypePatchClamp)
				fmt.Fprintln(out, biovocab.ModelTypeHomology)
				return nil
			}

			v := biovocab.NormalizeModelType(args[0])
			if v.IsKnown() {
				fmt.Fprintf(out, "%s (canonical)\n", v.Canonical)
			} else {
				fmt.Fprintf(out, "%s (unrecognized, stored verbatim)\n", v.Raw)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage channelgraph configuration",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.DefaultConfig()
			if err := c.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", defaultConfigPath(), "config file path")

	cfg.AddCommand(initCmd)
	return cfg
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "channelgraph.yaml"
	}
	return filepath.Join(home, ".config", appName, "config.yaml")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the channelgraph version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, Version)
		},
	}
}
