// Command bakeryadmin is a terminal console for the bakery back-office
// API. It drives the state store the same way the dashboard UI does: every
// command dispatches one operation and renders the resulting state.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ovenworks/bakeryadmin/internal/config"
	"github.com/ovenworks/bakeryadmin/internal/logging"
	"github.com/ovenworks/bakeryadmin/internal/state"
	"github.com/ovenworks/bakeryadmin/internal/tokenstore"
)

const usage = `usage: bakeryadmin <command> [flags]

commands:
  login       -username <name> -password <secret>
  logout
  whoami
  users       list | get | create | update | delete
  categories  list | get | create | update | delete
  products    list | get | create | update | delete

run "bakeryadmin <resource> <verb> -h" for the flags of a verb.`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LOG_LEVEL)

	tokens, err := tokenstore.Open(cfg.TOKEN_DB_PATH)
	if err != nil {
		logger.Error("token store init failed", "error", err)
		os.Exit(1)
	}

	store := state.New(cfg.API_BASE_URL, tokens, logger)
	if err := store.RestoreToken(); err != nil {
		logger.Warn("token restore failed", "error", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := logging.IntoContext(context.Background(), logger)

	var cmdErr error
	switch os.Args[1] {
	case "login":
		cmdErr = runLogin(ctx, store, os.Args[2:])
	case "logout":
		cmdErr = store.Logout()
		if cmdErr == nil {
			fmt.Println("logged out")
		}
	case "whoami":
		cmdErr = runWhoami(store)
	case "users":
		cmdErr = runUsers(ctx, store, os.Args[2:])
	case "categories":
		cmdErr = runCategories(ctx, store, os.Args[2:])
	case "products":
		cmdErr = runProducts(ctx, store, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		os.Exit(1)
	}
}

// banner prints the collection-level error the way the dashboard shows its
// dismissible failure banner.
func banner(msg string) {
	if msg != "" {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
}

// confirm gates destructive operations behind an explicit prompt.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
