package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) History(ctx context.Context) error {
	current := a.sessions.Current(ctx)
	if current == nil {
		printlnFn("Sign in to view your history")
		return nil
	}

	records := a.records.History(ctx, current.ID)
	if len(records) == 0 {
		printlnFn("No identifications yet")
		return nil
	}

	for _, r := range records {
		printlnFn(fmt.Sprintf("%s  %s  %s (%s)  %s",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.PredictedLabel, r.Category, r.ImageName))
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if a.sessions.Current(ctx) == nil {
		printlnFn("Sign in to manage your history")
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.records.DeleteByID(ctx, id)
	printlnFn("Deleted")
	return nil
}
