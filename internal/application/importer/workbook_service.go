package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/partner"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names of the workbook format
const (
	SheetResinLots = "Resin Lots"
	SheetSaleItems = "Sale Items"
	SheetClients   = "Clients"
)

// ImportSummary reports what one workbook import did
type ImportSummary struct {
	LotsImported      int `json:"lots_imported"`
	SaleItemsImported int `json:"sale_items_imported"`
	ClientsImported   int `json:"clients_imported"`
	RowsSkipped       int `json:"rows_skipped"`
	LotsRecalculated  int `json:"lots_recalculated"`
}

// ClientResolver resolves a buyer name to a client record
type ClientResolver interface {
	ResolveOrCreate(ctx context.Context, ownerID uuid.UUID, buyerName string) (*partner.Client, error)
}

// Recalculator runs an attribution pass after a bulk import
type Recalculator interface {
	RecalculateOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// WorkbookService imports and exports the owner's records as an xlsx
// workbook with one sheet per record type.
type WorkbookService struct {
	lots      order.ResinLotRepository
	items     order.SaleItemRepository
	clients   partner.ClientRepository
	resolver  ClientResolver
	recalc    Recalculator
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewWorkbookService creates a new WorkbookService
func NewWorkbookService(lots order.ResinLotRepository, items order.SaleItemRepository, clients partner.ClientRepository, resolver ClientResolver, recalc Recalculator, publisher shared.EventPublisher, logger *zap.Logger) *WorkbookService {
	return &WorkbookService{
		lots:      lots,
		items:     items,
		clients:   clients,
		resolver:  resolver,
		recalc:    recalc,
		publisher: publisher,
		logger:    logger,
	}
}

// Import reads a workbook and creates the records it contains. Rows
// missing a required field are skipped and counted, never fatal; numeric
// cells that fail to parse are coerced to zero. One attribution pass runs
// at the end instead of one per imported row.
func (s *WorkbookService) Import(ctx context.Context, ownerID uuid.UUID, r io.Reader) (*ImportSummary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	summary := &ImportSummary{}

	// Clients first so buyer resolution finds the imported records
	s.importClients(ctx, ownerID, f, summary)
	s.importResinLots(ctx, ownerID, f, summary)
	s.importSaleItems(ctx, ownerID, f, summary)

	recalculated, err := s.recalc.RecalculateOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("post-import recalculation failed", zap.Error(err))
	}
	summary.LotsRecalculated = recalculated

	// The recalc pass stays silent when nothing changed, and imported rows
	// carry no change events of their own. Read models still need to see
	// the new records, so the import announces itself unconditionally.
	imported := order.NewRecordsImportedEvent(ownerID, summary.LotsImported, summary.SaleItemsImported, summary.ClientsImported)
	if err := s.publisher.Publish(ctx, imported); err != nil {
		s.logger.Error("failed to publish import event", zap.Error(err))
	}

	s.logger.Info("workbook imported",
		zap.String("owner_id", ownerID.String()),
		zap.Int("lots", summary.LotsImported),
		zap.Int("sale_items", summary.SaleItemsImported),
		zap.Int("clients", summary.ClientsImported),
		zap.Int("skipped", summary.RowsSkipped),
	)

	return summary, nil
}

func (s *WorkbookService) importClients(ctx context.Context, ownerID uuid.UUID, f *excelize.File, summary *ImportSummary) {
	rows := sheetRows(f, SheetClients)
	for _, row := range rows {
		name := cell(row, 0)
		if strings.TrimSpace(name) == "" {
			summary.RowsSkipped++
			continue
		}

		// The existing record wins, imported duplicates are dropped
		if _, err := s.clients.FindByNormalizedName(ctx, ownerID, partner.NormalizeName(name)); err == nil {
			summary.RowsSkipped++
			continue
		}

		client, err := partner.NewClient(ownerID, name, cell(row, 1), cell(row, 2), cell(row, 3))
		if err != nil {
			summary.RowsSkipped++
			continue
		}
		if err := s.clients.Save(ctx, client); err != nil {
			s.logger.Error("failed to save imported client", zap.String("name", name), zap.Error(err))
			summary.RowsSkipped++
			continue
		}
		summary.ClientsImported++
	}
}

func (s *WorkbookService) importResinLots(ctx context.Context, ownerID uuid.UUID, f *excelize.File, summary *ImportSummary) {
	rows := sheetRows(f, SheetResinLots)

	var lots []*order.ResinLot
	for _, row := range rows {
		purchaseDate, err := ParseWorkbookDate(cell(row, 0))
		if err != nil {
			summary.RowsSkipped++
			continue
		}

		var endDate *time.Time
		if raw := cell(row, 1); raw != "" {
			if end, endErr := ParseWorkbookDate(raw); endErr == nil {
				endDate = &end
			}
		}

		status := order.ResinLotStatusPending
		if parsed, statusErr := order.ParseResinLotStatus(cell(row, 5)); statusErr == nil {
			status = parsed
		}

		lot, err := order.NewResinLot(ownerID, purchaseDate, endDate,
			parseAmount(cell(row, 2)), parseAmount(cell(row, 3)), parseAmount(cell(row, 4)), status)
		if err != nil {
			summary.RowsSkipped++
			continue
		}
		lot.ClearDomainEvents()
		lots = append(lots, lot)
	}

	if err := s.lots.SaveBatch(ctx, lots); err != nil {
		s.logger.Error("failed to save imported resin lots", zap.Error(err))
		summary.RowsSkipped += len(lots)
		return
	}
	summary.LotsImported += len(lots)
}

func (s *WorkbookService) importSaleItems(ctx context.Context, ownerID uuid.UUID, f *excelize.File, summary *ImportSummary) {
	rows := sheetRows(f, SheetSaleItems)

	var items []*order.SaleItem
	for _, row := range rows {
		itemName := cell(row, 0)
		saleDate, err := ParseWorkbookDate(cell(row, 3))
		if strings.TrimSpace(itemName) == "" || err != nil {
			summary.RowsSkipped++
			continue
		}

		location, err := order.ParseSaleLocation(cell(row, 2))
		if err != nil {
			location = order.SaleLocationShop
		}

		item, err := order.NewSaleItem(ownerID, itemName, parseAmount(cell(row, 1)), location, saleDate, cell(row, 4))
		if err != nil {
			summary.RowsSkipped++
			continue
		}
		if parseFlag(cell(row, 5)) {
			item.MarkDelivered()
		}
		item.ClearDomainEvents()

		if strings.TrimSpace(item.BuyerName) != "" {
			if client, err := s.resolver.ResolveOrCreate(ctx, ownerID, item.BuyerName); err == nil {
				item.BindClient(client.ID)
			}
		}

		items = append(items, item)
	}

	if err := s.items.SaveBatch(ctx, items); err != nil {
		s.logger.Error("failed to save imported sale items", zap.Error(err))
		summary.RowsSkipped += len(items)
		return
	}
	summary.SaleItemsImported += len(items)
}

// Export builds a workbook with the owner's records, one sheet per type
func (s *WorkbookService) Export(ctx context.Context, ownerID uuid.UUID) (*excelize.File, error) {
	lots, err := s.lots.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	writeSheet(f, SheetResinLots,
		[]string{"purchase_date", "end_date", "quantity", "cost", "gross_revenue", "status"},
		len(lots), func(i int) []interface{} {
			lot := &lots[i]
			end := ""
			if lot.EndDate != nil {
				end = lot.EndDate.Format("2006-01-02")
			}
			return []interface{}{
				lot.PurchaseDate.Format("2006-01-02"), end,
				lot.Quantity.String(), lot.Cost.String(), lot.GrossRevenue.String(),
				string(lot.Status),
			}
		})

	writeSheet(f, SheetSaleItems,
		[]string{"item_name", "price", "location", "sale_date", "buyer_name", "delivered"},
		len(items), func(i int) []interface{} {
			item := &items[i]
			delivered := ""
			if item.Delivered {
				delivered = "yes"
			}
			return []interface{}{
				item.ItemName, item.Price.String(), string(item.Location),
				item.SaleDate.Format("2006-01-02"), item.BuyerName, delivered,
			}
		})

	writeSheet(f, SheetClients,
		[]string{"name", "email", "phone", "address"},
		len(clients), func(i int) []interface{} {
			client := &clients[i]
			return []interface{}{client.Name, client.Email, client.Phone, client.Address}
		})

	f.DeleteSheet("Sheet1")

	return f, nil
}

// sheetRows returns the data rows of a sheet, skipping the header.
// A missing sheet yields no rows.
func sheetRows(f *excelize.File, sheet string) [][]string {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

func writeSheet(f *excelize.File, sheet string, headers []string, count int, rowAt func(i int) []interface{}) {
	f.NewSheet(sheet)
	for col, header := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cellRef, header)
	}
	for i := 0; i < count; i++ {
		for col, value := range rowAt(i) {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cellRef, value)
		}
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount coerces a numeric cell to a decimal; comma decimal
// separators are accepted, anything unparseable becomes zero.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "si", "sí", "x":
		return true
	default:
		return false
	}
}
