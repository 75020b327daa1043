// ABOUTME: Operator CLI for the portfolio database
// ABOUTME: Resets the admin password and reports record counts

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/donovan057/portfolio/internal/auth"
	"github.com/donovan057/portfolio/internal/config"
	"github.com/donovan057/portfolio/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("PORTFOLIO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := os.Args[1]

	switch cmd {
	case "reset-password":
		err = cmdResetPassword(cfg)
	case "status":
		err = cmdStatus(cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: portfolio-admin <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  reset-password   Set a new admin password (prompts for it)")
	fmt.Println("  status           Show record counts")
	fmt.Println()
	fmt.Println("The database path comes from PORTFOLIO_DB_PATH or the config")
	fmt.Println("file named by PORTFOLIO_CONFIG.")
}

// cmdResetPassword overwrites the stored admin digest. Recovery path for a
// lost web password; requires direct access to the database file.
func cmdResetPassword(cfg *config.Config) error {
	fmt.Print("New admin password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	admin, err := st.GetAdmin(ctx)
	if err != nil {
		return err
	}

	if err := st.UpdateAdminPassword(ctx, admin.ID, auth.Digest(password)); err != nil {
		return err
	}

	color.Green("Admin password updated.")
	return nil
}

func cmdStatus(cfg *config.Config) error {
	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	messages, err := st.CountMessages(ctx)
	if err != nil {
		return err
	}
	projects, err := st.CountProjects(ctx)
	if err != nil {
		return err
	}

	_, adminErr := st.GetAdmin(ctx)

	bold := color.New(color.Bold)
	bold.Println("Portfolio database status")
	fmt.Printf("  database:  %s\n", cfg.Database.Path)
	fmt.Printf("  messages:  %d\n", messages)
	fmt.Printf("  projects:  %d\n", projects)
	if adminErr != nil {
		color.Yellow("  admin:     missing (will be seeded on next server start)")
	} else {
		color.Green("  admin:     configured")
	}

	return nil
}
