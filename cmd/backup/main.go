package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edumarket/internal/config"
	"edumarket/internal/service"
	"edumarket/internal/storage"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(command string, args []string) error {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importForce := importCmd.Bool("force", false, "Replace the store without asking for confirmation")

	switch command {
	case "export":
		exportCmd.Parse(args)
	case "import":
		importCmd.Parse(args)
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
	case "status":
		statusCmd.Parse(args)
	default:
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	backend, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	backupService := service.NewBackupService(backend, logger)

	switch command {
	case "export":
		return handleExport(backupService, *exportOutput)
	case "import":
		return handleImport(backupService, *importInput, *importForce)
	default:
		return handleStatus(backend)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) error {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	log.Printf("Exporting store to: %s", outputPath)
	if err := backupService.Export(outputPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fileInfo, err := os.Stat(outputPath)
	if err == nil {
		log.Printf("Export complete! File size: %.2f KB", float64(fileInfo.Size())/1024)
	}
	return nil
}

func handleImport(backupService *service.BackupService, inputPath string, force bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}

	if !force && !confirm("WARNING: This replaces every collection in the store. Type 'yes' to confirm: ") {
		log.Println("Import cancelled")
		return nil
	}

	log.Printf("Importing store from: %s", inputPath)
	if err := backupService.Import(inputPath); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	log.Println("Import complete!")
	return nil
}

// handleStatus prints the size of every stored key and, for SQL stores, the applied migrations
func handleStatus(backend storage.Backend) error {
	for _, key := range storage.AllKeys {
		value, found, err := backend.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !found {
			fmt.Printf("  %-14s (absent)\n", key)
			continue
		}
		fmt.Printf("  %-14s %d bytes\n", key, len(value))
	}

	if sqlBackend, ok := backend.(*storage.SQLBackend); ok {
		applied, err := sqlBackend.Migrations()
		if err != nil {
			return fmt.Errorf("failed to list migrations: %w", err)
		}
		fmt.Printf("Migrations applied: %s\n", strings.Join(applied, ", "))
	}
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line) == "yes"
}

func printUsage() {
	fmt.Println("EduMarket Store Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export the store to a JSON file")
	fmt.Println("  backup import [options]    Replace the store from a JSON file")
	fmt.Println("  backup status              Show stored keys and applied migrations")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -force            Skip the confirmation prompt")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  backup export -output mybackup.json")
	fmt.Println("  backup import -input mybackup.json")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  STORAGE_BACKEND  bolt, sql or memory (default: bolt)")
	fmt.Println("  BOLT_PATH        bolt file path (default: ./edumarket.bolt)")
	fmt.Println("  DB_TYPE          sqlite, postgres or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./edumarket.db)")
	fmt.Println("  DB_URL           PostgreSQL or MySQL connection URL")
}
