package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	account, err := a.accounts.Register(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn("Registered and signed in as " + account.Email)
	return nil
}
