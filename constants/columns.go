package constants

// Column identifiers for the exported workbook. The tabular writer derives all
// presentation (widths, number format, alignment) from column identity alone.
const (
	ColFile          = "file"
	ColInvoiceNumber = "invoice_number"
	ColSender        = "sender"
	ColETDETA        = "etd_eta"
	ColPortLoading   = "port_loading"
	ColPortDischarge = "port_discharge"
	ColInvoiceDate   = "invoice_date"
	ColSTTNumber     = "stt_number"
	ColGrossWeightKG = "gross_weight_kg"
	ColVolumeCBM     = "volume_cbm"
	ColCostType      = "cost_type"
	ColAmount        = "amount"
)

// ColumnOrder is the final export column order. Rows handed to the writer are
// already denormalized, so this is the only ordering that exists.
var ColumnOrder = []string{
	ColFile,
	ColInvoiceNumber,
	ColSender,
	ColETDETA,
	ColPortLoading,
	ColPortDischarge,
	ColInvoiceDate,
	ColSTTNumber,
	ColGrossWeightKG,
	ColVolumeCBM,
	ColCostType,
	ColAmount,
}
