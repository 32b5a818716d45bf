package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
	"github.com/finvue/finvue_backend/internal/utils"
)

// exportSheetName is the tab the ledger is written to.
const exportSheetName = "Transactions"

// exportHeader is the first row of the exported sheet.
var exportHeader = []any{"ID", "Date", "Type", "Category", "Sub-category", "Source", "Amount", "Note", "Created By", "Status", "Created At"}

// GoogleClient writes ledger rows into a Google Sheet using a service
// account.
type GoogleClient struct {
	svc *gsheet.Service
}

// NewGoogleClient creates a Sheets client from service account credentials.
// credentialsFile may be empty when credentialsJSON is provided inline.
func NewGoogleClient(ctx context.Context, credentialsJSON, credentialsFile string) (*GoogleClient, error) {
	var creds []byte
	switch {
	case strings.TrimSpace(credentialsJSON) != "":
		creds = []byte(credentialsJSON)
	case strings.TrimSpace(credentialsFile) != "":
		var err error
		creds, err = os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

var _ clients.SpreadsheetExporter = (*GoogleClient)(nil)

// Export replaces the export tab with the current ledger, header included.
func (c *GoogleClient) Export(ctx context.Context, spreadsheetID string, transactions []domain.Transaction) (int, error) {
	if c.svc == nil {
		return 0, errors.New("sheets service not initialized")
	}

	clearRange := fmt.Sprintf("%s!A:K", exportSheetName)
	if _, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("failed to clear sheet %s: %w", exportSheetName, err)
	}

	values := make([][]any, 0, len(transactions)+1)
	values = append(values, exportHeader)
	for _, t := range transactions {
		values = append(values, []any{
			t.TransactionID,
			t.Date.Format("2006-01-02"),
			string(t.Type),
			t.Category,
			t.SubCategory,
			string(t.Source),
			utils.FormatAmount(t.Amount),
			t.Note,
			t.CreatedBy,
			string(t.Status),
			t.CreatedAt.Format(time.RFC3339),
		})
	}

	writeRange := fmt.Sprintf("%s!A1", exportSheetName)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("failed to write sheet %s: %w", exportSheetName, err)
	}
	return len(transactions), nil
}
