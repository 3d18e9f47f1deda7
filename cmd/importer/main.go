package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/directory-web/internal/config"
	"github.com/jwalitptl/directory-web/internal/importer"
	"github.com/jwalitptl/directory-web/internal/repository/postgres"
	"github.com/jwalitptl/directory-web/pkg/logger"
)

var (
	csvPath  string
	outPath  string
	logLevel string
	rows     int
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Load scraped clinic CSV exports into the directory",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.NewLogger(&logger.Config{Level: logger.ParseLevel(logLevel), Output: os.Stderr}).SetGlobal()
	},
	SilenceUsage: true,
}

var clinicsCmd = &cobra.Command{
	Use:   "consultorios",
	Short: "Create a clinic and a linked unverified listing per row",
	Long:  `Stops at the first failed insert. Rows inserted before the failure are kept; use rollback to remove them.`,
	RunE:  runImportClinics,
}

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Create standalone unverified listings, one per row",
	RunE:  runImportListings,
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Delete listings and clinics named in the CSV created in the last 24 hours",
	RunE:  runRollback,
}

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Write INSERT statements for standalone listings instead of touching the database",
	RunE:  runGenerateSQL,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print the CSV headers in UTF-8 and Latin-1 plus the first rows",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&csvPath, "csv", "f", "", "Path to the CSV export")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")
	_ = rootCmd.MarkPersistentFlagRequired("csv")

	sqlCmd.Flags().StringVarP(&outPath, "out", "o", "migration.sql", "Output file, - for stdout")
	checkCmd.Flags().IntVarP(&rows, "rows", "n", 1, "Number of data rows to print")

	rootCmd.AddCommand(clinicsCmd, listingsCmd, rollbackCmd, sqlCmd, checkCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func readTable() (*importer.Table, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()
	return importer.ReadTable(f)
}

func connect() (*sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return postgres.NewDB(cfg.Database)
}

func newImporter(db *sqlx.DB, out io.Writer) *importer.Importer {
	return importer.New(
		postgres.NewClinicRepository(db, nil),
		postgres.NewListingRepository(db, nil),
		out,
	)
}

func runImportClinics(cmd *cobra.Command, args []string) error {
	table, err := readTable()
	if err != nil {
		return err
	}
	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	records := table.Records()
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d records. Starting import...\n", len(records))

	summary, err := newImporter(db, cmd.OutOrStdout()).ImportClinics(cmd.Context(), records)
	if err != nil {
		log.Error().Err(err).Int("imported", summary.Success).Msg("Import aborted")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nImport complete. Success: %d, Errors: %d\n", summary.Success, summary.Errors)
	return nil
}

func runImportListings(cmd *cobra.Command, args []string) error {
	table, err := readTable()
	if err != nil {
		return err
	}
	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	records := table.Records()
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d records. Importing into directory_listings ONLY...\n", len(records))

	summary := newImporter(db, cmd.OutOrStdout()).ImportListings(cmd.Context(), records)
	fmt.Fprintf(cmd.OutOrStdout(), "\nImport complete. Success: %d, Errors: %d\n", summary.Success, summary.Errors)
	return nil
}

func runRollback(cmd *cobra.Command, args []string) error {
	table, err := readTable()
	if err != nil {
		return err
	}
	names := table.Names()
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d names in CSV.\n", len(names))
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found to delete.")
		return nil
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	summary := newImporter(db, cmd.OutOrStdout()).Rollback(cmd.Context(), names)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRollback complete.")
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted Directory Listings: %d\n", summary.DeletedListings)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted Consultorios: %d\n", summary.DeletedClinics)
	if summary.FailedStatements > 0 {
		return fmt.Errorf("%d delete statements failed", summary.FailedStatements)
	}
	return nil
}

func runGenerateSQL(cmd *cobra.Command, args []string) error {
	table, err := readTable()
	if err != nil {
		return err
	}
	records := table.Records()

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
		fmt.Fprintf(cmd.OutOrStderr(), "Generating SQL for %d records...\n", len(records))
	}

	if err := importer.WriteSQL(w, records, importer.RandomToken); err != nil {
		return fmt.Errorf("failed to write sql: %w", err)
	}
	if outPath != "-" {
		fmt.Fprintf(cmd.OutOrStderr(), "Migration file created at %s\n", outPath)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}
	return importer.Check(cmd.OutOrStdout(), raw, rows)
}
