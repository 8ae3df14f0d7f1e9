package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/herbalif/herbalif/internal/ingest"
	"github.com/herbalif/herbalif/internal/models"
)

func (a *App) Identify(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.workflow.SelectFile(path)

	record, err := a.workflow.Submit(ctx)
	if errors.Is(err, ingest.ErrSkipped) {
		printlnFn("Prediction: " + a.workflow.Label())
		printlnFn("Sign in to keep results in your history")
		return nil
	}
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn("Prediction: " + record.PredictedLabel)
	printlnFn("Category: " + string(record.Category))
	printlnFn(record.Description)
	return nil
}

func (a *App) onRecordSaved(record models.IdentificationRecord) {
	a.logger.Debug(context.Background(), "result recorded", "id", record.ID, "owner", record.OwnerID)
}
