package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homemade/ledgerlink/accounting"
	"github.com/homemade/ledgerlink/node"
	"github.com/homemade/ledgerlink/runner"
)

// NewRoot builds the top-level `ledgerlink` command.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledgerlink",
		Short:         "Run accounting API operations over workflow items",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCmd(), newOperationsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var configPath, resource, operation, envVar, dotenv string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one resource operation over every configured item",
		Long: `Run one resource operation over every configured item.

Items, credentials and the client/fiscal year context are read from the YAML
config file. ${VAR} references are resolved from the JSON object in the
--env variable first, then from the process environment, which is seeded
from --dotenv when that file exists. Output records are written to stdout
as JSON lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dotenv != "" {
				if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to load %s %w", dotenv, err)
				}
			}
			cfg, err := accounting.LoadConfigFile(configPath, accounting.JSONCompositeEnvVar{Parent: envVar})
			if err != nil {
				return err
			}

			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "ledgerlink",
				Level:  hclog.LevelFromString(cfg.Log.Level),
				Output: cmd.ErrOrStderr(),
			})

			client := accounting.NewClient(append(cfg.ClientOptions(), accounting.WithClientLogger(logger.Named("api")))...)
			e := runner.NewExecution(cfg, resource, operation, logger)

			out, runErr := runner.Run(cmd.Context(), client, e)
			if err := writeRecords(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "ledgerlink.yaml", "YAML config file")
	cmd.Flags().StringVarP(&resource, "resource", "r", "", "resource name, e.g. fiscalYear")
	cmd.Flags().StringVarP(&operation, "operation", "p", "", "operation name, e.g. getAll")
	cmd.Flags().StringVar(&envVar, "env", "", "env var holding a JSON object of config values")
	cmd.Flags().StringVar(&dotenv, "dotenv", ".env", "dotenv file loaded into the environment if present")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("operation")

	return cmd
}

func newOperationsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "operations [resource]",
		Short: "List supported resources and operations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := runner.GenerateOperationDocumentation(args...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "csv":
				s, err := doc.FormatCSV()
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, s)
				return err
			case "text", "":
				byResource := map[string][]string{}
				var order []string
				for _, row := range doc.Rows {
					if _, seen := byResource[row.Resource]; !seen {
						order = append(order, row.Resource)
					}
					byResource[row.Resource] = append(byResource[row.Resource], row.Operation)
				}
				for _, r := range order {
					fmt.Fprintf(w, "%s: %s\n", r, strings.Join(byResource[r], ", "))
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q (valid: text, csv)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", "text", "output format: text|csv")
	return cmd
}

// writeRecords writes one host-encoded record per line.
func writeRecords(w io.Writer, records []node.OutputRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
