package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ovenworks/bakeryadmin/internal/state"
)

func runLogin(ctx context.Context, store *state.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if err := store.Login(ctx, *username, *password); err != nil {
		banner(store.Session().Err)
		return err
	}

	sess := store.Session()
	fmt.Printf("logged in as %s (%s)\n", sess.User.Username, sess.User.Role)
	if exp, ok := sess.TokenExpiry(); ok {
		fmt.Printf("token valid until %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runWhoami(store *state.Store) error {
	sess := store.Session()
	if sess.Token == "" {
		fmt.Println("not logged in")
		return nil
	}
	if sess.User != nil {
		fmt.Printf("logged in as %s (%s)\n", sess.User.Username, sess.User.Role)
	} else {
		fmt.Println("token restored from storage; identity unknown until next login")
	}
	if exp, ok := sess.TokenExpiry(); ok {
		fmt.Printf("token valid until %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
