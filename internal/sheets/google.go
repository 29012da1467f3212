package sheets

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"duesmanager/internal/metrics"
)

const backendName = "sheets"

// valueInput keeps cells exactly as written; the app owns all formatting.
const valueInput = "RAW"

// Google is a ValuesAPI backed by the Google Sheets v4 API.
type Google struct {
	svc           *gsheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

var _ ValuesAPI = (*Google)(nil)

// NewGoogle builds a client authenticated as a service account. credentials
// is the service account JSON; when empty it is read from credentialsFile.
func NewGoogle(ctx context.Context, spreadsheetID string, credentials []byte, credentialsFile string) (*Google, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	if len(credentials) == 0 && credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read sheets credentials: %w", err)
		}
		credentials = data
	}

	var opts []option.ClientOption
	if len(credentials) > 0 {
		conf, err := google.JWTConfigFromJSON(credentials, gsheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse sheets credentials: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(conf.Client(ctx)))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Google{svc: svc, spreadsheetID: spreadsheetID, sheetIDs: make(map[string]int64)}, nil
}

func (g *Google) Get(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	metrics.ObserveStoreCall(backendName, "get", err)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rng, err)
	}
	return resp.Values, nil
}

func (g *Google) Update(ctx context.Context, rng string, rows [][]interface{}) error {
	vr := &gsheets.ValueRange{Values: rows}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, vr).
		ValueInputOption(valueInput).
		Context(ctx).
		Do()
	metrics.ObserveStoreCall(backendName, "update", err)
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

func (g *Google) Append(ctx context.Context, rng string, rows [][]interface{}) error {
	vr := &gsheets.ValueRange{Values: rows}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, rng, vr).
		ValueInputOption(valueInput).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	metrics.ObserveStoreCall(backendName, "append", err)
	if err != nil {
		return fmt.Errorf("append %s: %w", rng, err)
	}
	return nil
}

func (g *Google) DeleteRow(ctx context.Context, sheet string, row int) error {
	sheetID, err := g.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	_, err = g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	metrics.ObserveStoreCall(backendName, "delete_row", err)
	if err != nil {
		return fmt.Errorf("delete %s row %d: %w", sheet, row, err)
	}
	return nil
}

// sheetID resolves a tab title to its numeric id; deleting rows needs the id.
func (g *Google) sheetID(ctx context.Context, title string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id, ok := g.sheetIDs[title]; ok {
		return id, nil
	}

	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	metrics.ObserveStoreCall(backendName, "get_spreadsheet", err)
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			g.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	id, ok := g.sheetIDs[title]
	if !ok {
		return 0, fmt.Errorf("sheet %q not found", title)
	}
	return id, nil
}
