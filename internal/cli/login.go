package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Login(ctx context.Context) error {
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

	account, err := a.accounts.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn("Signed in as " + account.Name + " <" + account.Email + ">")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	printlnFn("Signed out")
	return nil
}
